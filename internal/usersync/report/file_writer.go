package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"usersync/internal/usersync/model"
)

// FileWriter writes run reports as indented JSON files under Dir.
type FileWriter struct {
	Dir string
}

func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{Dir: dir}
}

// WriteMissingEmails overwrites missing_emails.json; a nil slice is written as [].
func (w *FileWriter) WriteMissingEmails(users []model.User) (string, error) {
	if users == nil {
		users = []model.User{}
	}
	return w.writeJSON(model.MissingEmailsFile, users)
}

// WriteUpdateErrors overwrites email_update_errors.json.
func (w *FileWriter) WriteUpdateErrors(logs []model.ErrorLog) (string, error) {
	if logs == nil {
		logs = []model.ErrorLog{}
	}
	return w.writeJSON(model.EmailUpdateErrorsFile, logs)
}

// writeJSON replaces name atomically so readers never observe a partial file.
func (w *FileWriter) writeJSON(name string, v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(w.Dir, name)

	tmp, err := os.CreateTemp(w.Dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("replace %s: %w", name, err)
	}

	return path, nil
}
