package audioName

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/openfit/domain/external/audioTag"
	"go.uber.org/mock/gomock"
)

func TestAudioNameService_Label(t *testing.T) {
	tests := []struct {
		name     string
		metadata audioTag.Metadata
		err      error
		expected string
	}{
		{
			name:     "再生時間が付くこと",
			metadata: audioTag.Metadata{Title: "Song", Artist: "Band", DurationSeconds: 205},
			expected: "Song - Band (03:25)",
		},
		{
			name:     "タグがなくても再生時間が付くこと",
			metadata: audioTag.Metadata{DurationSeconds: 59},
			expected: "track01.mp3 (00:59)",
		},
		{
			name:     "アーティストがない場合はファイル名",
			metadata: audioTag.Metadata{Title: "Song"},
			expected: "track01.mp3",
		},
		{
			name:     "再生時間が不明な場合は名前のみ",
			metadata: audioTag.Metadata{Title: "Song", Artist: "Band"},
			expected: "Song - Band",
		},
		{
			name:     "読み込めない場合はファイル名",
			err:      errors.New("broken"),
			expected: "track01.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			reader := audioTag.NewMockReader(mockCtrl)
			reader.EXPECT().Read("/music/track01.mp3").Return(tt.metadata, tt.err)

			assert.Equal(t, tt.expected, NewAudioNameService(reader).Label("/music/track01.mp3"))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "00:07", FormatDuration(7))
	assert.Equal(t, "03:25", FormatDuration(205))
	assert.Equal(t, "75:00", FormatDuration(4500))
	assert.Equal(t, "00:00", FormatDuration(-3))
}
