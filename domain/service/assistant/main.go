package assistant

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/openfit/domain/model/chat"
	"github.com/t-kuni/openfit/domain/model/prompts/coach"
	"github.com/t-kuni/openfit/domain/repository/file"
	"github.com/t-kuni/openfit/domain/service/chatFactory"
	"github.com/t-kuni/openfit/domain/service/documentStore"
	"github.com/t-kuni/openfit/domain/service/exerciseFilter"
	"github.com/t-kuni/openfit/domain/service/exerciseManage"
	"github.com/t-kuni/openfit/domain/system/ksuid"
	"github.com/t-kuni/openfit/domain/system/timer"
)

const timestampLayout = "02.01.2006 03:04 PM"

var ErrEmptyQuestion = eris.New("question is empty")

// AssistantService runs questions to the coach in the background and keeps
// the conversation history for the lifetime of the process.
type AssistantService struct {
	store                 *documentStore.DocumentStore
	exerciseManageService *exerciseManage.ExerciseManageService
	chatFactory           *chatFactory.ChatFactory
	fileRepository        file.Repository
	timer                 timer.ITimer
	ksuidGenerator        ksuid.IKsuid
	log                   *slog.Logger

	mu             sync.Mutex
	chat           chat.Chat
	chatDriver     chatFactory.Driver
	history        []chat.Message
	saveTranscript bool
	transcriptPath string
}

func NewAssistantService(
	store *documentStore.DocumentStore,
	exerciseManageService *exerciseManage.ExerciseManageService,
	chatFactory *chatFactory.ChatFactory,
	fileRepository file.Repository,
	timer timer.ITimer,
	ksuidGenerator ksuid.IKsuid,
	log *slog.Logger,
) *AssistantService {
	return &AssistantService{
		store:                 store,
		exerciseManageService: exerciseManageService,
		chatFactory:           chatFactory,
		fileRepository:        fileRepository,
		timer:                 timer,
		ksuidGenerator:        ksuidGenerator,
		log:                   log,
	}
}

func (s *AssistantService) Model() string {
	return s.store.AssistantModel()
}

// SetModel stores the model for the following questions. The history is
// carried over, also when the model is served by another API.
func (s *AssistantService) SetModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return eris.New("model is empty")
	}
	return s.store.SetAssistantModel(model)
}

// SaveTranscript makes every completed exchange be appended to a CSV file
// under the history directory next to the program data.
func (s *AssistantService) SaveTranscript(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveTranscript = enabled
}

func (s *AssistantService) TranscriptPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcriptPath
}

func (s *AssistantService) History() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return chat.CopyHistory(s.history)
}

// Ask sends question in a new goroutine. The returned channel yields the
// answer fragments, then one EventDone or EventError, and is closed.
// Callers must drain it. Cancelling ctx aborts the request.
func (s *AssistantService) Ask(ctx context.Context, question string) <-chan chat.Event {
	events := make(chan chat.Event)
	question = strings.TrimSpace(question)

	s.mu.Lock()
	c, model, err := s.prepare(question)

	go func() {
		defer close(events)
		defer s.mu.Unlock()

		if err != nil {
			events <- chat.Event{Kind: chat.EventError, Err: err}
			return
		}

		answer, err := s.send(ctx, c, model, question, func(delta string) {
			events <- chat.Event{Kind: chat.EventDelta, Text: delta}
		})
		if err != nil {
			s.log.Debug("assistant request failed", "model", model, "error", err)
			events <- chat.Event{Kind: chat.EventError, Err: err}
			return
		}
		events <- chat.Event{Kind: chat.EventDone, Text: answer}
	}()

	return events
}

// prepare reads everything needed from the program data before the request
// leaves the caller's goroutine.
func (s *AssistantService) prepare(question string) (chat.Chat, string, error) {
	if question == "" {
		return nil, "", ErrEmptyQuestion
	}

	model := s.store.AssistantModel()
	driver := chatFactory.DriverOf(model)
	if s.chat != nil && s.chatDriver == driver {
		return s.chat, model, nil
	}

	weekday := s.timer.Now().Weekday().String()
	system, err := coach.BuildPrompt(coach.PromptParam{
		Weekday:   weekday,
		Exercises: exerciseFilter.FilterByDay(s.exerciseManageService.GetAll(), weekday),
	})
	if err != nil {
		return nil, "", eris.Wrap(err, "failed to build system prompt")
	}

	c, err := s.chatFactory.Make(model, system, s.store.Token(), s.history)
	if err != nil {
		return nil, "", err
	}
	s.chat = c
	s.chatDriver = driver

	return c, model, nil
}

func (s *AssistantService) send(ctx context.Context, c chat.Chat, model string, question string, onDelta func(string)) (string, error) {
	askedAt := s.timer.Now()

	result, err := c.Send(ctx, question, model, onDelta)
	s.history = c.GetHistory()
	if err != nil {
		return "", eris.Wrap(err, "failed to ask assistant")
	}

	if s.saveTranscript {
		err := s.appendTranscript([][]string{
			{chat.RoleUser, askedAt.Format(timestampLayout), question},
			{chat.RoleAssistant, s.timer.Now().Format(timestampLayout), result.Content},
		})
		if err != nil {
			s.log.Warn("failed to save conversation", "error", err)
		}
	}

	return result.Content, nil
}

func (s *AssistantService) appendTranscript(rows [][]string) error {
	if s.transcriptPath == "" {
		s.transcriptPath = filepath.Join(filepath.Dir(s.store.Path()), "history", s.ksuidGenerator.New(), "conversation.csv")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if !s.fileRepository.Exists(s.transcriptPath) {
		if err := w.Write([]string{"author", "timestamp", "content"}); err != nil {
			return err
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}

	return s.fileRepository.Append(s.transcriptPath, buf.Bytes())
}
