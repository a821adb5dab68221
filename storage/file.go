package storage

import (
	"os"

	"github.com/lucascaro/hostman/util"
	log "github.com/sirupsen/logrus"
)

//DefaultBackupSuffix is appended to the hosts file path to name its backup
const DefaultBackupSuffix = ".bak"

type (
	//Persister reads and replaces the contents of a hosts file
	Persister interface {
		Read() (string, error)
		Write(contents string) error
	}

	//File persists a hosts file on disk, keeping a copy of the previous
	//contents next to it before every write
	File struct {
		Path         string
		BackupSuffix string
		Log          *log.Entry
	}
)

// NewFile returns a File for path. An empty suffix selects DefaultBackupSuffix.
func NewFile(path string, backupSuffix string, logger *log.Entry) *File {
	if backupSuffix == "" {
		backupSuffix = DefaultBackupSuffix
	}
	return &File{
		Path:         path,
		BackupSuffix: backupSuffix,
		Log:          logger,
	}
}

// BackupPath returns the location of the backup copy
func (f *File) BackupPath() string {
	return f.Path + f.BackupSuffix
}

// Read returns the contents of the hosts file
func (f *File) Read() (string, error) {
	if util.IsDir(f.Path) {
		return "", &LoadError{Path: f.Path, Err: ErrIsDirectory}
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", &LoadError{Path: f.Path, Err: err}
	}
	f.Log.WithFields(log.Fields{
		"path":  f.Path,
		"bytes": len(data),
	}).Debug("Read hosts file")
	return string(data), nil
}

// Backup copies the current hosts file to BackupPath
func (f *File) Backup() error {
	info, err := os.Stat(f.Path)
	if err != nil {
		return &PersistError{Op: "stat", Path: f.Path, Err: err}
	}
	if info.IsDir() {
		return &PersistError{Op: "stat", Path: f.Path, Err: ErrIsDirectory}
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return &PersistError{Op: "read", Path: f.Path, Err: err}
	}
	backup := f.BackupPath()
	if err = os.WriteFile(backup, data, info.Mode().Perm()); err != nil {
		return &PersistError{Op: "write backup file", Path: backup, Err: err}
	}
	f.Log.WithField("path", backup).Info("Wrote hosts file backup")
	return nil
}

// Write backs up the hosts file and replaces it with contents. The
// file mode of the existing file is kept.
func (f *File) Write(contents string) error {
	if util.IsDir(f.Path) {
		return &PersistError{Op: "write hosts file", Path: f.Path, Err: ErrIsDirectory}
	}
	if err := f.Backup(); err != nil {
		return err
	}
	info, err := os.Stat(f.Path)
	if err != nil {
		return &PersistError{Op: "stat", Path: f.Path, Err: err}
	}
	if err = os.WriteFile(f.Path, []byte(contents), info.Mode().Perm()); err != nil {
		return &PersistError{Op: "write hosts file", Path: f.Path, Err: err}
	}
	f.Log.WithFields(log.Fields{
		"path":  f.Path,
		"bytes": len(contents),
	}).Info("Wrote hosts file")
	return nil
}
