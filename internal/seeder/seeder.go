// Package seeder populates the database with sample users and prompts. One
// Seeder invocation is one batch run: it connects, does its work, and always
// releases the connection before returning.
package seeder

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"shareprompts/internal/db"
	"shareprompts/internal/errors"
	"shareprompts/internal/model"
	"shareprompts/internal/repository"
)

// Options controls a seeding run. Zero counts mean "the whole dataset".
type Options struct {
	ClearDatabase bool
	UserCount     int
	PromptCount   int
	Verbose       bool
}

// DefaultOptions matches a plain full reseed: clear everything, insert the
// full datasets, narrate progress.
func DefaultOptions() Options {
	return Options{ClearDatabase: true, Verbose: true}
}

// Seeder runs seeding modes against the database behind manager.
type Seeder struct {
	manager *db.Manager
	opts    Options
}

// New builds a Seeder.
func New(manager *db.Manager, opts Options) *Seeder {
	return &Seeder{manager: manager, opts: opts}
}

// Run performs a full reseed: clear both collections, insert users, insert
// prompts with creators drawn uniformly at random from the users just
// inserted, then report final counts. The clear, user insert, prompt insert
// and stats steps run strictly in that order.
func (s *Seeder) Run(ctx context.Context) (err error) {
	s.info("starting full reseed")

	if err := s.open(ctx); err != nil {
		return err
	}
	defer s.release(&err)

	users := repository.NewUserRepository(s.manager)
	prompts := repository.NewPromptRepository(s.manager)

	if s.opts.ClearDatabase {
		if err = s.clearAll(ctx, users, prompts); err != nil {
			return err
		}
	}

	ids, err := s.insertUsers(ctx, users)
	if err != nil {
		return err
	}
	if err = s.insertPrompts(ctx, prompts, ids); err != nil {
		return err
	}
	return s.reportStats(ctx, users, prompts)
}

// SeedUsersOnly inserts the user dataset slice, optionally clearing existing
// users first. Prompts are never touched.
func (s *Seeder) SeedUsersOnly(ctx context.Context) (err error) {
	s.info("seeding users only")

	if err := s.open(ctx); err != nil {
		return err
	}
	defer s.release(&err)

	users := repository.NewUserRepository(s.manager)
	if s.opts.ClearDatabase {
		cleared, derr := users.DeleteAll(ctx)
		if derr != nil {
			return fmt.Errorf("clear users: %w", derr)
		}
		s.info("cleared existing users", "count", cleared)
	}

	_, err = s.insertUsers(ctx, users)
	return err
}

// SeedPromptsOnly inserts the prompt dataset slice, drawing creators from the
// users currently stored. It fails fast when no users exist.
func (s *Seeder) SeedPromptsOnly(ctx context.Context) (err error) {
	s.info("seeding prompts only")

	if err := s.open(ctx); err != nil {
		return err
	}
	defer s.release(&err)

	users := repository.NewUserRepository(s.manager)
	prompts := repository.NewPromptRepository(s.manager)

	ids, err := users.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("list user ids: %w", err)
	}
	if len(ids) == 0 {
		return errors.ErrNoUsers
	}

	if s.opts.ClearDatabase {
		cleared, derr := prompts.DeleteAll(ctx)
		if derr != nil {
			return fmt.Errorf("clear prompts: %w", derr)
		}
		s.info("cleared existing prompts", "count", cleared)
	}

	return s.insertPrompts(ctx, prompts, ids)
}

// open connects and makes sure the tables exist.
func (s *Seeder) open(ctx context.Context) error {
	if err := s.manager.Connect(); err != nil {
		return err
	}
	gormDB, err := s.manager.DB()
	if err != nil {
		return err
	}
	if err := gormDB.WithContext(ctx).AutoMigrate(&model.User{}, &model.Prompt{}); err != nil {
		_ = s.manager.Close()
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// release closes the connection on every exit path, keeping the first error.
func (s *Seeder) release(err *error) {
	if cerr := s.manager.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
	s.info("database connection closed")
}

func (s *Seeder) clearAll(ctx context.Context, users repository.UserRepository, prompts repository.PromptRepository) error {
	userCount, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	promptCount, err := prompts.Count(ctx)
	if err != nil {
		return fmt.Errorf("count prompts: %w", err)
	}
	if _, err := users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	if _, err := prompts.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear prompts: %w", err)
	}
	s.info("cleared existing data", "users", userCount, "prompts", promptCount)
	return nil
}

func (s *Seeder) insertUsers(ctx context.Context, repo repository.UserRepository) ([]uuid.UUID, error) {
	dataset, err := loadUsers()
	if err != nil {
		return nil, err
	}
	batch := sliceHead(dataset, s.opts.UserCount)
	if err := repo.InsertMany(ctx, batch); err != nil {
		return nil, fmt.Errorf("insert users: %w", err)
	}
	ids := make([]uuid.UUID, len(batch))
	for i := range batch {
		ids[i] = batch[i].ID
	}
	s.info("seeded users", "count", len(batch))
	return ids, nil
}

func (s *Seeder) insertPrompts(ctx context.Context, repo repository.PromptRepository, creatorIDs []uuid.UUID) error {
	if len(creatorIDs) == 0 {
		return errors.ErrNoUsers
	}
	dataset, err := loadPrompts()
	if err != nil {
		return err
	}
	batch := sliceHead(dataset, s.opts.PromptCount)
	records := make([]model.Prompt, len(batch))
	for i, rec := range batch {
		records[i] = model.Prompt{
			Text:      rec.Prompt,
			Tag:       rec.Tag,
			CreatorID: creatorIDs[rand.Intn(len(creatorIDs))],
		}
	}
	if err := repo.InsertMany(ctx, records); err != nil {
		return fmt.Errorf("insert prompts: %w", err)
	}
	s.info("seeded prompts", "count", len(records))
	return nil
}

func (s *Seeder) reportStats(ctx context.Context, users repository.UserRepository, prompts repository.PromptRepository) error {
	userCount, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	promptCount, err := prompts.Count(ctx)
	if err != nil {
		return fmt.Errorf("count prompts: %w", err)
	}
	s.info("database statistics", "users", userCount, "prompts", promptCount)
	return nil
}

func (s *Seeder) info(msg string, keyvals ...interface{}) {
	if s.opts.Verbose {
		log.Info(msg, keyvals...)
	}
}
