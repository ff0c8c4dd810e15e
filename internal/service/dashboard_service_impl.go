package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/neuroguard/internal/chart"
	"github.com/alexanderramin/neuroguard/internal/contract"
	"github.com/alexanderramin/neuroguard/internal/dataset"
	"github.com/alexanderramin/neuroguard/internal/domain"
)

// Section identifiers, also used as DOM ids on the page.
const (
	SectionTimeline = "timeline"
	SectionMap      = "map"
)

// PageText holds the fixed copy shown on the dashboard.
type PageText struct {
	Title           string
	Heading         string
	TimelineHeading string
	MapHeading      string
}

// DefaultPageText returns the dashboard copy.
func DefaultPageText() PageText {
	return PageText{
		Title:           "NeuroGuard Timeline & Global Map",
		Heading:         "🔭 NeuroGuard Timeline & Global Collaboration Map 🌐",
		TimelineHeading: "🚀 Execution Roadmap: From Lab to Deep Space",
		MapHeading:      "🌍 Global Scientific Collaborators for NeuroGuard",
	}
}

type dashboardService struct {
	source   dataset.Source
	text     PageText
	palette  domain.Palette
	observer UseCaseObserver
}

// NewDashboardService wires the dashboard use case to a dataset source.
func NewDashboardService(source dataset.Source, text PageText, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{
		source:   source,
		text:     text,
		palette:  domain.DarkPalette(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) Dataset(ctx context.Context) (*domain.Dataset, error) {
	d, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return d, nil
}

// Build loads the dataset and renders both sections independently. A
// failing section, or a failing load, becomes an inline notice; the
// returned error is reserved for a cancelled context.
func (s *dashboardService) Build(ctx context.Context) (view *contract.DashboardView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	var loadErr error
	defer func() {
		reported := err
		if reported == nil {
			reported = loadErr
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-dashboard",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   reported == nil,
			Err:       reported,
			Fields:    fields,
		})
	}()

	view = &contract.DashboardView{
		Title:    s.text.Title,
		Heading:  s.text.Heading,
		Timeline: contract.Section{ID: SectionTimeline, Heading: s.text.TimelineHeading},
		Map:      contract.Section{ID: SectionMap, Heading: s.text.MapHeading},
	}

	var d *domain.Dataset
	d, loadErr = s.Dataset(ctx)
	if loadErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		view.Notice = &contract.Notice{
			Kind:    contract.NoticeError,
			Message: "The dashboard data could not be loaded.",
			Details: []string{loadErr.Error()},
		}
		view.Timeline.Notice = unavailableNotice()
		view.Map.Notice = unavailableNotice()
		return view, nil
	}
	view.Dataset = d.Name
	fields["dataset"] = d.Name

	view.Timeline = s.timelineSection(view.Timeline, d)
	view.Map = s.mapSection(view.Map, d)
	fields["timeline_points"] = pointCount(view.Timeline)
	fields["map_points"] = pointCount(view.Map)

	return view, nil
}

func (s *dashboardService) timelineSection(sec contract.Section, d *domain.Dataset) contract.Section {
	if len(d.Milestones) == 0 {
		sec.Notice = &contract.Notice{Kind: contract.NoticeEmpty, Message: "No milestones to display."}
		return sec
	}
	if errs := d.ValidateMilestones(); len(errs) > 0 {
		sec.Notice = invalidNotice("Some milestones are invalid and the timeline was not drawn.", errs)
		return sec
	}

	opts := chart.DefaultTimelineOptions(d.Years)
	opts.Palette = s.palette
	fig, err := chart.Timeline(d.Milestones, opts)
	if err != nil {
		sec.Notice = sectionErrorNotice(err)
		return sec
	}
	sec.Figure = fig
	return sec
}

func (s *dashboardService) mapSection(sec contract.Section, d *domain.Dataset) contract.Section {
	if len(d.Institutions) == 0 {
		sec.Notice = &contract.Notice{Kind: contract.NoticeEmpty, Message: "No institutions to display."}
		return sec
	}
	if errs := d.ValidateInstitutions(); len(errs) > 0 {
		sec.Notice = invalidNotice("Some institutions have invalid coordinates and the map was not drawn.", errs)
		return sec
	}

	opts := chart.DefaultGlobeOptions()
	opts.Palette = s.palette
	fig, err := chart.Globe(d.Institutions, opts)
	if err != nil {
		sec.Notice = sectionErrorNotice(err)
		return sec
	}
	sec.Figure = fig
	return sec
}

func invalidNotice(msg string, errs []error) *contract.Notice {
	details := make([]string, 0, len(errs))
	for _, e := range errs {
		details = append(details, e.Error())
	}
	return &contract.Notice{Kind: contract.NoticeInvalid, Message: msg, Details: details}
}

func sectionErrorNotice(err error) *contract.Notice {
	kind := contract.NoticeError
	if errors.Is(err, domain.ErrUnknownYear) || errors.Is(err, domain.ErrDuplicateYear) || errors.Is(err, domain.ErrCoordinateRange) || errors.Is(err, domain.ErrEmptyField) {
		kind = contract.NoticeInvalid
	}
	return &contract.Notice{Kind: kind, Message: "This chart could not be drawn.", Details: []string{err.Error()}}
}

func unavailableNotice() *contract.Notice {
	return &contract.Notice{Kind: contract.NoticeError, Message: "Chart unavailable."}
}

func pointCount(sec contract.Section) int {
	if sec.Figure == nil {
		return 0
	}
	return sec.Figure.PointCount()
}
