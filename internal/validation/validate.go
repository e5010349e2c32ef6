// Package validation provides centralized input validation logic.
// This includes project ID checks, file and folder name rules, and language IDs.
//
// All user inputs are validated before any request is sent so that
// obviously invalid calls fail without a round trip.
package validation

import (
	"strings"
	"unicode"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/errors"
)

// MaxNameLength is the longest file or directory name Crowdin accepts.
const MaxNameLength = 255

// forbiddenNameChars are rejected by Crowdin in file and directory names.
const forbiddenNameChars = `\/:*?"<>|`

// ValidateProjectID checks that a project ID refers to a real project.
func ValidateProjectID(op string, projectID int64) error {
	if projectID <= 0 {
		return errors.NewValidationError(op, "project ID must be positive").WithProject(projectID)
	}
	return nil
}

// ValidateName validates a file or directory name according to Crowdin rules.
func ValidateName(op, name string) error {
	if name == "" {
		return errors.NewValidationError(op, "name cannot be empty")
	}

	if strings.TrimSpace(name) != name {
		return errors.NewValidationError(op, "name cannot start or end with whitespace").WithName(name)
	}

	if len(name) > MaxNameLength {
		return errors.NewValidationError(op, "name cannot exceed 255 characters").WithName(name)
	}

	if strings.ContainsAny(name, forbiddenNameChars) {
		return errors.NewValidationError(op, `name cannot contain any of \ / : * ? " < > |`).WithName(name)
	}

	if name == "." || name == ".." {
		return errors.NewValidationError(op, "name cannot be a relative path element").WithName(name)
	}

	if hasControlCharacters(name) {
		return errors.NewValidationError(op, "name cannot contain control characters").WithName(name)
	}

	return nil
}

// ValidateLanguageID validates a Crowdin language identifier such as "de" or "pt-BR".
func ValidateLanguageID(op, languageID string) error {
	if languageID == "" {
		return errors.NewValidationError(op, "language ID cannot be empty")
	}

	for _, r := range languageID {
		if r != '-' && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return errors.NewValidationError(op, "language ID contains invalid characters").WithName(languageID)
		}
	}

	return nil
}

// ValidateFileID checks that a file ID refers to a real file.
func ValidateFileID(op string, fileID int64) error {
	if fileID <= 0 {
		return errors.NewValidationError(op, "file ID must be positive")
	}
	return nil
}

// ValidateDirectoryID checks that a directory exists remotely.
// A zero ID marks a directory that has not been created yet.
func ValidateDirectoryID(op string, directoryID int64) error {
	if directoryID <= 0 {
		return errors.NewValidationError(op, "directory ID must be positive; create the directory first")
	}
	return nil
}

// ValidateParent checks an optional parent directory. A nil parent means the project root.
func ValidateParent(op string, parent *crowdintypes.Directory) error {
	if parent == nil {
		return nil
	}
	if err := ValidateDirectoryID(op, parent.ID); err != nil {
		return errors.NewValidationError(op, "parent directory has not been created").WithName(parent.Name)
	}
	return nil
}

// hasControlCharacters checks if a string contains control characters.
func hasControlCharacters(s string) bool {
	for _, char := range s {
		if unicode.IsControl(char) {
			return true
		}
	}
	return false
}
