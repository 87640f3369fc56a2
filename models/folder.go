package models

// FolderType controls how folder contents are exposed.
type FolderType string

const (
	FolderTypeStandard FolderType = "STANDARD"
	FolderTypeShared   FolderType = "SHARED"
	FolderTypePublic   FolderType = "PUBLIC"
	// FolderTypeTransferred folders hold entries received from another
	// registry; their contents are listed regardless of visibility.
	FolderTypeTransferred FolderType = "TRANSFERRED"
	FolderTypeRemote      FolderType = "REMOTE"
)

// Folder is a named container of entry identifiers.
type Folder struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	OwnerEmail  string     `json:"owner_email"`
	Type        FolderType `json:"type"`
}

// VisibleOnly reports whether listings of this folder are restricted to
// entries with [VisibilityOK].
func (f Folder) VisibleOnly() bool {
	return f.Type != FolderTypeTransferred
}

// TableName returns the name of the database table
// associated with the Folder model.
func (f Folder) TableName() string {
	return "folders"
}
