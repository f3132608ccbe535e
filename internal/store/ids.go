package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"packlist/internal/model"
)

// newRandomID returns item-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func newRandomID() (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return "item-" + strings.ToLower(enc.EncodeToString(b[:])), nil
}

// NewItemID generates an id that is unique within d.
func NewItemID(d *model.Document) string {
	for i := 0; i < 50; i++ {
		id, err := newRandomID()
		if err != nil {
			break
		}
		if _, exists := d.FindItem(id); !exists {
			return id
		}
	}
	// crypto/rand failure or absurd collision streak: sequential fallback.
	for n := len(d.Items) + 1; ; n++ {
		id := fmt.Sprintf("item-%d", n)
		if _, exists := d.FindItem(id); !exists {
			return id
		}
	}
}
