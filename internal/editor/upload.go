package editor

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

// MaxLogoBytes bounds an uploaded logo before it is inlined.
const MaxLogoBytes = 2 << 20

var allowedLogoTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/svg+xml": true,
}

// ErrUnsupportedLogo is wrapped by uploads that are not png, jpeg or svg.
var ErrUnsupportedLogo = errors.New("unsupported logo type")

// ErrLogoTooLarge is wrapped by uploads over MaxLogoBytes.
var ErrLogoTooLarge = errors.New("logo too large")

// DataURL sniffs data and returns it inlined as a base64 data URL. Only png,
// jpeg and svg are accepted.
func DataURL(data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("%w: empty file", ErrUnsupportedLogo)
	}
	if len(data) > MaxLogoBytes {
		return "", "", fmt.Errorf("%w: %d bytes exceeds %d", ErrLogoTooLarge, len(data), MaxLogoBytes)
	}

	detected := mimetype.Detect(data)
	mediaType := ""
	for m := detected; m != nil; m = m.Parent() {
		if allowedLogoTypes[m.String()] {
			mediaType = m.String()
			break
		}
	}
	if mediaType == "" {
		return "", detected.String(), fmt.Errorf("%w: %s", ErrUnsupportedLogo, detected.String())
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), mediaType, nil
}

// UploadLogo inlines an uploaded file and replaces the slot wholesale.
func (s *Store) UploadLogo(slot, filename string, data []byte) (Change, error) {
	if err := checkSlot(slot); err != nil {
		return Change{}, err
	}

	dataURL, mediaType, err := DataURL(data)
	if err != nil {
		s.log.Warnw("logo upload rejected", "slot", slot, "file", filename, "media_type", mediaType)
		return Change{}, slideerrors.NewUploadError(slot, mediaType, err)
	}

	return s.write("logos."+slot, func(cfg *style.Configuration, _ *string) error {
		setLogo(cfg, slot, dataURL)
		return nil
	})
}
