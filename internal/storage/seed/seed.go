package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kabarettimpro/theater-api/internal/domain/content"
	"github.com/kabarettimpro/theater-api/internal/logger"
	"github.com/kabarettimpro/theater-api/internal/storage/mongodb"
)

// Seeder inserts default content into empty collections. It never touches a
// collection that already holds documents, so re-running it is a no-op.
type Seeder struct {
	infos  mongodb.InfoRepository
	owners mongodb.OwnerRepository
	events mongodb.EventRepository
	log    *log.Logger

	// Now is the clock used to anchor seeded event dates. Overridable in tests.
	Now func() time.Time
}

// New creates a seeder over a repository container
func New(c *mongodb.Container) *Seeder {
	return NewWithRepositories(c.Infos(), c.Owners(), c.Events())
}

// NewWithRepositories creates a seeder over explicit repositories
func NewWithRepositories(infos mongodb.InfoRepository, owners mongodb.OwnerRepository, events mongodb.EventRepository) *Seeder {
	return &Seeder{
		infos:  infos,
		owners: owners,
		events: events,
		log:    logger.Seed(),
		Now:    time.Now,
	}
}

// Run seeds every empty collection with its default content. The error result
// is explicit; the API startup logs and discards it so that a failed seed never
// blocks serving.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedInfo(ctx); err != nil {
		return fmt.Errorf("seeding info: %w", err)
	}
	if err := s.seedOwners(ctx); err != nil {
		return fmt.Errorf("seeding owners: %w", err)
	}
	if err := s.seedEvents(ctx); err != nil {
		return fmt.Errorf("seeding events: %w", err)
	}
	return nil
}

// Counts reports the current document count per collection without inserting
func (s *Seeder) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, 3)

	n, err := s.infos.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts[content.Info{}.CollectionName()] = n

	n, err = s.owners.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts[content.Owner{}.CollectionName()] = n

	n, err = s.events.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts[content.Event{}.CollectionName()] = n

	return counts, nil
}

func (s *Seeder) seedInfo(ctx context.Context) error {
	n, err := s.infos.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Debug("Info collection already populated, skipping", "documents", n)
		return nil
	}

	info := DefaultInfo()
	if err := info.Validate(); err != nil {
		return err
	}
	if err := s.infos.Insert(ctx, info); err != nil {
		return err
	}

	s.log.Info("Seeded default venue info", "name", info.Name)
	return nil
}

func (s *Seeder) seedOwners(ctx context.Context) error {
	n, err := s.owners.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Debug("Owner collection already populated, skipping", "documents", n)
		return nil
	}

	owners := DefaultOwners()
	for _, owner := range owners {
		if err := owner.Validate(); err != nil {
			return err
		}
		if err := s.owners.Insert(ctx, owner); err != nil {
			return err
		}
	}

	s.log.Info("Seeded default owners", "count", len(owners))
	return nil
}

func (s *Seeder) seedEvents(ctx context.Context) error {
	n, err := s.events.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Debug("Event collection already populated, skipping", "documents", n)
		return nil
	}

	events := DefaultEvents(EventBaseTime(s.Now()))
	for _, event := range events {
		if err := event.Validate(); err != nil {
			return err
		}
		if err := s.events.Insert(ctx, event); err != nil {
			return err
		}
	}

	s.log.Info("Seeded default events", "count", len(events))
	return nil
}

// EventBaseTime anchors seeded event dates at 19:30 UTC on the given day
func EventBaseTime(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 19, 30, 0, 0, time.UTC)
}

// DefaultInfo returns the default venue identity record
func DefaultInfo() *content.Info {
	return &content.Info{
		Name:          "Kabarett & Impro Wien",
		Address:       "Kreativgasse 12",
		City:          "Wien",
		Country:       "Österreich",
		Phone:         strPtr("+43 1 234 5678"),
		Email:         strPtr("hello@kabarett-impro.wien"),
		Website:       strPtr("https://kabarett-impro.wien"),
		DescriptionDE: strPtr("Ein quirliges Zuhause für Kabarett, Stand-up und Impro in Wien."),
		DescriptionEN: strPtr("A quirky home for cabaret, stand-up, and improv in Vienna."),
		HowToGetDE:    strPtr("U3 bis Volkstheater, dann 5 Minuten zu Fuß. Straßenbahn 49 bis Siebensternplatz."),
		HowToGetEN:    strPtr("U3 to Volkstheater, then a 5-minute walk. Tram 49 to Siebensternplatz."),
		VideoReelURL:  strPtr("https://player.vimeo.com/video/76979871?h=8272103f6e"),
	}
}

// DefaultOwners returns the default owner records in insertion order
func DefaultOwners() []*content.Owner {
	return []*content.Owner{
		{
			Name:   "Lena Leitner",
			Role:   "Künstlerische Leitung",
			BioDE:  "Improverin, Kabarettistin und professionelle Quatschmacherin.",
			BioEN:  "Improviser, cabaret artist and professional mischief maker.",
			Avatar: strPtr("https://i.pravatar.cc/200?img=5"),
		},
		{
			Name:   "Max Maurer",
			Role:   "Geschäftsführung",
			BioDE:  "Organisationswitz mit Herz für Pointen und Publikum.",
			BioEN:  "Organizational wizard with a heart for punchlines and people.",
			Avatar: strPtr("https://i.pravatar.cc/200?img=12"),
		},
	}
}

// DefaultEvents returns the default upcoming events relative to the base time
func DefaultEvents(base time.Time) []*content.Event {
	return []*content.Event{
		{
			Title:       "Kabarett: Wiener Schmäh",
			Description: strPtr("Pointenreicher Abend mit lokalen Talenten."),
			Date:        base.AddDate(0, 0, 7),
			Language:    content.LanguageGerman,
			Category:    "Kabarett",
			DurationMin: intPtr(90),
			TicketURL:   strPtr("https://tickets.example.com/kabarett-wiener-schmaeh"),
			CoverImage:  strPtr("https://images.unsplash.com/photo-1515165562835-c3b8c935f746?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Title:       "Improv: Alles kann, nix muss",
			Description: strPtr("Publikumsvorschläge führen zu wilden Szenen."),
			Date:        base.AddDate(0, 0, 18),
			Language:    content.LanguageGerman,
			Category:    "Impro",
			DurationMin: intPtr(80),
			TicketURL:   strPtr("https://tickets.example.com/improv-alles-kann"),
			CoverImage:  strPtr("https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Title:       "Stand-up: Late Night Laughs",
			Description: strPtr("Englischsprachige Comedians aus ganz Europa."),
			Date:        base.AddDate(0, 0, 32),
			Language:    content.LanguageEnglish,
			Category:    "Stand-up",
			DurationMin: intPtr(100),
			TicketURL:   strPtr("https://tickets.example.com/late-night-laughs"),
			CoverImage:  strPtr("https://images.unsplash.com/photo-1487537023671-8dce1a785863?q=80&w=1200&auto=format&fit=crop"),
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
