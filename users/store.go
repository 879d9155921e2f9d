// Package users encapsulates the flat-file credential store.
// User records live in a CSV file with columns `username,password,email`
// (header row included); the password column holds a hex-encoded SHA-256
// digest, never plaintext. The file is the only shared state between
// sessions, and every write rewrites it in full: callers read, modify, and
// save. There is no locking, so concurrent registrations can lose updates —
// a documented limitation of the storage contract, not something this layer
// papers over.
package users

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
)

// header is the CSV header row, in stored column order.
var header = []string{"username", "password", "email"}

// User represents one record in the credential file.
type User struct {
	Username       string `json:"username"`
	PasswordDigest string `json:"-"` // Never expose the digest in API responses
	Email          string `json:"email"`
}

// Store provides load, save, register, and authenticate operations over the
// credential file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the CSV file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// HashPassword returns the hex-encoded SHA-256 digest of a password.
// The digest is deterministic and unsalted so records can be compared by
// simple equality against the stored column.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Load reads all user records from the backing file in stored order.
// If the file is absent, it is created with only the header row and an empty
// slice is returned.
func (s *Store) Load() ([]User, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.Save(nil); err != nil {
				return nil, err
			}
			return []User{}, nil
		}
		return nil, apperror.NewStorageError("failed to open users file", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, apperror.NewStorageError("failed to parse users file", err)
	}

	records := []User{}
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		if len(row) < 3 {
			return nil, apperror.NewStorageError(
				fmt.Sprintf("malformed users file: row %d has %d columns, want 3", i+1, len(row)), nil)
		}
		records = append(records, User{
			Username:       row[0],
			PasswordDigest: row[1],
			Email:          row[2],
		})
	}
	return records, nil
}

// Save overwrites the backing file in full with the given records.
// There are no append semantics at this layer; callers read-modify-write.
func (s *Store) Save(records []User) error {
	f, err := os.Create(s.path)
	if err != nil {
		return apperror.NewStorageError("failed to write users file", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return apperror.NewStorageError("failed to write users file header", err)
	}
	for _, u := range records {
		if err := w.Write([]string{u.Username, u.PasswordDigest, u.Email}); err != nil {
			return apperror.NewStorageError("failed to write user record", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return apperror.NewStorageError("failed to flush users file", err)
	}
	return nil
}

// Register appends a new user record unless the username is already present.
// The duplicate check is a linear scan with case-sensitive exact matching.
// Returns a ConflictError when the username is taken.
func (s *Store) Register(username, password, email string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	for _, u := range records {
		if u.Username == username {
			return apperror.NewConflictError("Username already exists.", nil)
		}
	}
	records = append(records, User{
		Username:       username,
		PasswordDigest: HashPassword(password),
		Email:          email,
	})
	return s.Save(records)
}

// Authenticate reports whether a record exists with an exact username match
// and a password digest equal to the stored digest. A missing user and a
// wrong password are indistinguishable in the result.
func (s *Store) Authenticate(username, password string) (bool, error) {
	records, err := s.Load()
	if err != nil {
		return false, err
	}
	digest := HashPassword(password)
	for _, u := range records {
		if u.Username == username && u.PasswordDigest == digest {
			return true, nil
		}
	}
	return false, nil
}

// FindByUsername returns the record with the given username, or nil if no
// such record exists.
func (s *Store) FindByUsername(username string) (*User, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Username == username {
			return &records[i], nil
		}
	}
	return nil, nil
}
