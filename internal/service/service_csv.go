package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

// csvService resolves uploaded entry references, one per row. Only the first
// column of each row is read.
//
// Rows are incidental discovery: a token that matches nothing, or only
// entries the caller cannot read, is reported unresolved instead of failing
// the upload.
type csvService struct {
	transactor    store.Transactor
	entries       store.EntryRepository
	authorization AuthorizationService

	logger *logger.Logger
}

func NewCSVService(transactor store.Transactor, entries store.EntryRepository, authorization AuthorizationService, logger *logger.Logger) CSVService {
	return &csvService{
		transactor:    transactor,
		entries:       entries,
		authorization: authorization,
		logger:        logger,
	}
}

// Validate returns one result per match of every non-empty row, in row order.
// A token matching several entries by name yields one result per entry.
func (s *csvService) Validate(ctx context.Context, userID string, r io.Reader, matchByName bool) ([]models.ParsedEntryID, error) {
	log := logger.FromContext(ctx)

	tokens, err := readTokens(r)
	if err != nil {
		log.Err(err).Str("func", "*csvService.Validate").Msg("malformed csv")
		return nil, err
	}

	parsed := make([]models.ParsedEntryID, 0, len(tokens))
	err = s.transactor.WithinReadTx(ctx, func(ctx context.Context) error {
		principal, err := s.authorization.Principal(ctx, userID)
		if err != nil {
			return err
		}

		for _, token := range tokens {
			candidates, err := s.lookup(ctx, token, matchByName)
			if err != nil {
				return err
			}

			if len(candidates) == 0 {
				parsed = append(parsed, models.ParsedEntryID{RawToken: token})
				continue
			}

			for _, entry := range candidates {
				readable, err := s.authorization.CanReadEntry(ctx, principal, entry)
				if err != nil {
					return err
				}

				row := models.ParsedEntryID{RawToken: token}
				if readable {
					row.Part = models.NewPartData(entry)
				}
				parsed = append(parsed, row)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*csvService.Validate").Str("user_id", userID).Msg("csv validation failed")
		return nil, fromStore("csv validation", err)
	}

	return parsed, nil
}

// lookup matches the trimmed token. A token that is only whitespace matches
// nothing.
func (s *csvService) lookup(ctx context.Context, token string, matchByName bool) ([]models.Entry, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	if matchByName {
		entries, err := s.entries.GetEntriesByName(ctx, token)
		if err != nil {
			return nil, upstream("entries by name", err)
		}
		return entries, nil
	}

	entry, err := s.entries.GetEntryByPartNumber(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			return nil, nil
		}
		return nil, upstream("entry by part number", err)
	}
	return []models.Entry{entry}, nil
}

// readTokens returns the first column of every row whose first column is not
// empty, as it appears in the upload.
func readTokens(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var tokens []string
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RowError{Row: row, Err: fmt.Errorf("%w: %w", ErrInvalidArgument, err)}
		}

		if len(record) == 0 || record[0] == "" {
			continue
		}
		tokens = append(tokens, record[0])
	}

	return tokens, nil
}
