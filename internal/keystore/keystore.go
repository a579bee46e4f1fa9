package keystore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"saltbox/internal/domain"
	"saltbox/internal/memzero"
)

const identityFilename = "identity.json.enc"

// FileStore persists the local identity to disk, encrypted under a
// passphrase.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// SaveIdentity writes the encrypted identity to disk.
func (s *FileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	N, r, p := scryptParams()
	blob, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, identityFilename), blob, 0o600)
}

// LoadIdentity reads and decrypts the identity.
func (s *FileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, identityFilename))
	if err != nil {
		return domain.Identity{}, err
	}
	raw, err := decrypt(passphrase, b)
	if err != nil {
		return domain.Identity{}, err
	}
	defer memzero.Zero(raw)

	var id domain.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Compile-time assertion that FileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*FileStore)(nil)
