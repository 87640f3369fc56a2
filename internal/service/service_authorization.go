// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

// authorizationService decides read and write access on entries and folders.
//
// Read access on an entry is granted to administrators, to the owner, to
// holders of an explicit read grant (directly or through any group including
// the public group) and to readers of any folder containing the entry.
// Write access requires ownership, administration or an explicit write grant
// through the account or one of its explicit groups.
type authorizationService struct {
	accounts    store.AccountRepository
	permissions store.PermissionRepository

	logger *logger.Logger
}

func NewAuthorizationService(accounts store.AccountRepository, permissions store.PermissionRepository, logger *logger.Logger) AuthorizationService {
	return &authorizationService{
		accounts:    accounts,
		permissions: permissions,
		logger:      logger,
	}
}

func (s *authorizationService) Principal(ctx context.Context, userID string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Principal{}, fmt.Errorf("%w: anonymous caller", ErrUnauthorized)
	}

	account, err := s.accounts.GetAccountByEmail(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Warn().Str("func", "*authorizationService.Principal").Str("user_id", userID).Msg("unknown account")
			return models.Principal{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		log.Err(err).Str("func", "*authorizationService.Principal").Str("user_id", userID).Msg("account lookup failed")
		return models.Principal{}, upstream("account lookup", err)
	}

	groupIDs, err := s.accounts.AccountGroupIDs(ctx, account.ID)
	if err != nil {
		log.Err(err).Str("func", "*authorizationService.Principal").Int64("account_id", account.ID).Msg("group lookup failed")
		return models.Principal{}, upstream("group lookup", err)
	}

	public, err := s.accounts.GetPublicGroup(ctx)
	if err != nil {
		log.Err(err).Str("func", "*authorizationService.Principal").Msg("public group lookup failed")
		return models.Principal{}, upstream("public group lookup", err)
	}

	return models.Principal{
		Account:       account,
		GroupIDs:      groupIDs,
		PublicGroupID: public.ID,
	}, nil
}

func (s *authorizationService) CanReadEntry(ctx context.Context, principal models.Principal, entry models.Entry) (bool, error) {
	if isOwnerOrAdmin(principal.Account, entry.OwnerEmail) {
		return true, nil
	}

	granted, err := s.permissions.HasEntryPermission(ctx, entry.ID, principal.Account.ID, principal.ReadGroupIDs(), false)
	if err != nil {
		return false, upstream("entry read permission", err)
	}
	if granted {
		return true, nil
	}

	inFolder, err := s.permissions.EntryInReadableFolder(ctx, entry.ID, principal.Account, principal.ReadGroupIDs())
	if err != nil {
		return false, upstream("entry folder permission", err)
	}

	return inFolder, nil
}

func (s *authorizationService) CanWriteEntry(ctx context.Context, principal models.Principal, entry models.Entry) (bool, error) {
	if isOwnerOrAdmin(principal.Account, entry.OwnerEmail) {
		return true, nil
	}

	granted, err := s.permissions.HasEntryPermission(ctx, entry.ID, principal.Account.ID, principal.GroupIDs, true)
	if err != nil {
		return false, upstream("entry write permission", err)
	}

	return granted, nil
}

func (s *authorizationService) ExpectReadEntry(ctx context.Context, principal models.Principal, entry models.Entry) error {
	ok, err := s.CanReadEntry(ctx, principal, entry)
	return s.expect(ctx, ok, err, "read", "entry", entry.ID, principal)
}

func (s *authorizationService) ExpectWriteEntry(ctx context.Context, principal models.Principal, entry models.Entry) error {
	ok, err := s.CanWriteEntry(ctx, principal, entry)
	return s.expect(ctx, ok, err, "write", "entry", entry.ID, principal)
}

func (s *authorizationService) CanReadFolder(ctx context.Context, principal models.Principal, folder models.Folder) (bool, error) {
	if isOwnerOrAdmin(principal.Account, folder.OwnerEmail) {
		return true, nil
	}

	granted, err := s.permissions.HasFolderPermission(ctx, folder.ID, principal.Account.ID, principal.ReadGroupIDs(), false)
	if err != nil {
		return false, upstream("folder read permission", err)
	}

	return granted, nil
}

func (s *authorizationService) CanWriteFolder(ctx context.Context, principal models.Principal, folder models.Folder) (bool, error) {
	if isOwnerOrAdmin(principal.Account, folder.OwnerEmail) {
		return true, nil
	}

	granted, err := s.permissions.HasFolderPermission(ctx, folder.ID, principal.Account.ID, principal.GroupIDs, true)
	if err != nil {
		return false, upstream("folder write permission", err)
	}

	return granted, nil
}

func (s *authorizationService) ExpectReadFolder(ctx context.Context, principal models.Principal, folder models.Folder) error {
	ok, err := s.CanReadFolder(ctx, principal, folder)
	return s.expect(ctx, ok, err, "read", "folder", folder.ID, principal)
}

func (s *authorizationService) ExpectWriteFolder(ctx context.Context, principal models.Principal, folder models.Folder) error {
	ok, err := s.CanWriteFolder(ctx, principal, folder)
	return s.expect(ctx, ok, err, "write", "folder", folder.ID, principal)
}

func (s *authorizationService) expect(ctx context.Context, ok bool, err error, right, kind string, id int64, principal models.Principal) error {
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	logger.FromContext(ctx).Warn().
		Str("func", "*authorizationService.expect").
		Str("user_id", principal.Account.Email).
		Str("right", right).
		Str(kind, fmt.Sprint(id)).
		Msg("access denied")

	return fmt.Errorf("%w: %s access to %s %d", ErrUnauthorized, right, kind, id)
}

func isOwnerOrAdmin(account models.Account, ownerEmail string) bool {
	if account.IsAdmin() {
		return true
	}
	return ownerEmail != "" && strings.EqualFold(account.Email, ownerEmail)
}
