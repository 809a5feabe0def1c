package voucher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MaxArtifactSize bounds uploaded payment proofs at 5 MiB.
const MaxArtifactSize = 5 << 20

// ArtifactStore persists uploaded voucher artifacts on disk. Artifacts are
// write-once: nothing ever mutates a stored file.
type ArtifactStore struct {
	dir string
}

func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

// Save writes the artifact under a collision-resistant generated name and
// returns that name. It is called before any database write so a storage
// failure aborts the checkout before a transaction is opened.
func (s *ArtifactStore) Save(originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating voucher directory: %w", err)
	}

	name := fmt.Sprintf("voucher-%s-%s%s",
		time.Now().Format("20060102-150405"),
		uuid.New(),
		filepath.Ext(originalName),
	)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating voucher file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, MaxArtifactSize)); err != nil {
		return "", fmt.Errorf("writing voucher file: %w", err)
	}

	return name, nil
}
