package audioTag

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/dhowden/tag"
	"github.com/rotisserie/eris"
	domainAudioTag "github.com/t-kuni/openfit/domain/external/audioTag"
	"github.com/tcolgate/mp3"
)

type TagReader struct{}

func NewTagReader() *TagReader {
	return &TagReader{}
}

// Read reads ID3 (and other supported) tags and sums the MPEG frame
// durations. A file without tags yields empty tag fields.
func (r *TagReader) Read(path string) (domainAudioTag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return domainAudioTag.Metadata{}, eris.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	result := domainAudioTag.Metadata{}

	m, err := tag.ReadFrom(f)
	switch {
	case errors.Is(err, tag.ErrNoTagsFound):
	case err != nil:
		return domainAudioTag.Metadata{}, eris.Wrapf(err, "failed to read tags of %s", path)
	default:
		result.Title = m.Title()
		result.Artist = m.Artist()
		result.Album = m.Album()
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return domainAudioTag.Metadata{}, eris.Wrapf(err, "failed to rewind %s", path)
	}
	result.DurationSeconds = int(frameDuration(f).Round(time.Second) / time.Second)

	return result, nil
}

// frameDuration decodes frames until the first error. Bytes that are not
// part of a frame are skipped by the decoder.
func frameDuration(r io.Reader) time.Duration {
	d := mp3.NewDecoder(r)

	var total time.Duration
	var frame mp3.Frame
	skipped := 0
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			return total
		}
		total += frame.Duration()
	}
}
