// Package chatbot is the question-answering core. Service.Answer runs a
// question through the deterministic rule cascade, then the lexical FAQ
// matcher, then the semantic intent fallback, and finally the default
// response.
package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/config"
	domerrors "github.com/campustrack/chatbot-go/internal/errors"
	"github.com/campustrack/chatbot-go/internal/faq"
	"github.com/campustrack/chatbot-go/internal/intent"
	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/metrics"
	"github.com/campustrack/chatbot-go/internal/modules/faculty"
	"github.com/campustrack/chatbot-go/internal/modules/help"
	"github.com/campustrack/chatbot-go/internal/modules/lab"
	"github.com/campustrack/chatbot-go/internal/modules/schedule"
	"github.com/campustrack/chatbot-go/internal/modules/status"
	"github.com/campustrack/chatbot-go/internal/modules/syllabus"
	"github.com/campustrack/chatbot-go/internal/rag"
)

// Answer stages, used as metric labels.
const (
	StageRule     = "rule"
	StageFAQ      = "faq"
	StageSemantic = "semantic"
	StageDefault  = "default"
)

// Service answers free-text questions about schedules, faculty, syllabus
// sessions and lab programs.
type Service struct {
	store    bot.Store
	registry *bot.Registry
	matcher  *intent.Matcher
	metrics  *metrics.Metrics
	logger   *logger.Logger

	maxQueryLength int

	// Handlers the semantic router calls directly, bypassing CanHandle.
	greeting *help.GreetingHandler
	helpH    *help.HelpHandler
	named    *faculty.NamedHandler
	dept     *faculty.DepartmentHandler
	list     *faculty.ListHandler
	today    *schedule.TodayHandler
	session  *syllabus.SessionHandler
	labH     *lab.Handler
	absent   *status.AbsentHandler
	history  *status.HistoryHandler
}

// NewService builds the full rule cascade in priority order and wires the
// FAQ and semantic fallbacks behind it. The topic searcher and intent
// matcher may be nil; the corresponding stages then disable themselves.
func NewService(store bot.Store, searcher *rag.HybridSearcher, matcher *intent.Matcher, cfg *config.Config, m *metrics.Metrics, log *logger.Logger) *Service {
	s := &Service{
		store:          store,
		registry:       bot.NewRegistry(),
		matcher:        matcher,
		metrics:        m,
		logger:         log.WithModule("chatbot"),
		maxQueryLength: cfg.Chat.MaxQueryLength,

		greeting: help.NewGreetingHandler(),
		helpH:    help.NewHelpHandler(),
		named:    faculty.NewNamedHandler(store),
		dept:     faculty.NewDepartmentHandler(store),
		list:     faculty.NewListHandler(store),
		today:    schedule.NewTodayHandler(store),
		session:  syllabus.NewSessionHandler(store),
		labH:     lab.NewHandler(store),
		absent:   status.NewAbsentHandler(store),
		history:  status.NewHistoryHandler(store),
	}

	// Most specific rules first; the first CanHandle hit wins.
	for _, h := range []bot.Handler{
		s.greeting,
		s.helpH,
		s.named,
		s.dept,
		schedule.NewClassTypeHandler(store),
		schedule.NewPeriodHandler(store),
		schedule.NewWeekdayHandler(store),
		s.session,
		s.labH,
		s.absent,
		status.NewSummaryHandler(store),
		s.history,
		s.list,
		syllabus.NewTopicHandler(searcher),
		s.today,
	} {
		s.registry.Register(h)
	}
	return s
}

// Answer resolves one question. Collaborator failures return an error;
// everything else, including unrecognized questions, returns text.
func (s *Service) Answer(ctx context.Context, question string, today time.Time) (string, error) {
	start := time.Now()

	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: empty question", domerrors.ErrInvalidInput)
	}
	if s.maxQueryLength > 0 && len(question) > s.maxQueryLength {
		return "", fmt.Errorf("%w: question exceeds %d bytes", domerrors.ErrInvalidInput, s.maxQueryLength)
	}

	q := bot.NewQuery(question, today)
	if err := s.loadCatalogs(ctx, q); err != nil {
		return "", err
	}

	// Stage 1: rule cascade.
	if name, ok := s.registry.Match(q); ok {
		answer, _, err := s.registry.Dispatch(ctx, q)
		if err != nil {
			s.record(name, "error", StageRule, start)
			return "", err
		}
		s.record(name, "success", StageRule, start)
		return answer, nil
	}

	// Stage 2: lexical FAQ lookup.
	catalog, err := s.store.FAQCatalog(ctx)
	if err != nil {
		s.record("faq", "error", StageFAQ, start)
		return "", err
	}
	if entry, ok := faq.Match(question, catalog); ok {
		s.metrics.RecordFAQMatch("hit")
		s.record("faq", "success", StageFAQ, start)
		return fmt.Sprintf("💡 **%s**\n\n%s", entry.Question, entry.Answer), nil
	}
	s.metrics.RecordFAQMatch("miss")

	// Stage 3: semantic intent fallback.
	if s.matcher.Enabled() {
		name, _, ok, err := s.matcher.Match(ctx, question)
		if err != nil {
			// The deterministic default still answers when the
			// embedding provider is down.
			s.logger.WithError(err).Warn("semantic match failed")
		} else if ok {
			s.metrics.RecordSemanticMatch("hit")
			answer, err := s.routeIntent(ctx, name, q)
			if err != nil {
				s.record(name, "error", StageSemantic, start)
				return "", err
			}
			s.record(name, "success", StageSemantic, start)
			return answer, nil
		} else {
			s.metrics.RecordSemanticMatch("miss")
		}
	}

	// Stage 4: default response.
	s.record("default", "success", StageDefault, start)
	return help.DefaultText(q.Day), nil
}

// loadCatalogs stashes the faculty and department catalogs on the query so
// handler predicates can match names and codes without store access.
func (s *Service) loadCatalogs(ctx context.Context, q *bot.Query) error {
	var err error
	if q.Faculty, err = s.store.AllActiveFaculty(ctx); err != nil {
		return fmt.Errorf("load faculty catalog: %w", err)
	}
	if q.Departments, err = s.store.AllDepartments(ctx); err != nil {
		return fmt.Errorf("load department catalog: %w", err)
	}
	return nil
}

func (s *Service) record(intentName, result, stage string, start time.Time) {
	s.metrics.RecordChatRequest(intentName, result, stage, time.Since(start).Seconds())
}
