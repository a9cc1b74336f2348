// Package storefront implements the store's REST operations over the
// product, FAQ, loyalty and feedback repositories.
package storefront

import (
	"context"
	"coursework/internal/apperr"
	"coursework/internal/catalog"
	"coursework/internal/engine"
	"coursework/internal/models"
	"coursework/internal/storage"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stores groups the repositories the storefront reads and writes.
type Stores struct {
	Products storage.Repository[models.Product]
	FAQs     storage.Repository[models.FAQ]
	Loyalty  storage.Repository[models.LoyaltyUser]
	Feedback storage.Repository[models.Feedback]
}

// Key functions of the stored records.
func ProductKey(p models.Product) string     { return strconv.Itoa(p.ID) }
func FAQKey(f models.FAQ) string             { return f.Question }
func LoyaltyKey(u models.LoyaltyUser) string { return u.Email }
func FeedbackKey(f models.Feedback) string   { return f.ID }

type Service struct {
	stores   Stores
	collator *engine.Collator
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string

	// signupMu makes the duplicate check and the append one step.
	signupMu sync.Mutex
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(stores Stores, collator *engine.Collator, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		stores:   stores,
		collator: collator,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check reads every store once, concurrently, and returns the first failure.
func (s *Service) Check(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return check(ctx, "products", s.stores.Products) })
	g.Go(func() error { return check(ctx, "faqs", s.stores.FAQs) })
	g.Go(func() error { return check(ctx, "loyalty", s.stores.Loyalty) })
	g.Go(func() error { return check(ctx, "feedback", s.stores.Feedback) })
	return g.Wait()
}

func check[T any](ctx context.Context, name string, repo storage.Repository[T]) error {
	if _, err := repo.Get(ctx); err != nil {
		return fmt.Errorf("%s store: %w", name, err)
	}
	return nil
}

// Products lists the listable products of a category and subcategory (both
// optional, exact match) in the requested order.
func (s *Service) Products(ctx context.Context, category, subcategory string, mode catalog.SortMode) ([]models.Product, error) {
	all, err := s.stores.Products.Get(ctx)
	if err != nil {
		s.logger.Error("read products", zap.Error(err))
		return nil, apperr.Storage("Could not read products.", err)
	}
	listed := []models.Product{}
	for _, p := range catalog.Filter(all, category, subcategory) {
		if catalog.Listable(p) {
			listed = append(listed, p)
		}
	}
	return catalog.Sort(listed, mode, s.collator), nil
}

// Item returns one product by category, subcategory and id.
func (s *Service) Item(ctx context.Context, category, subcategory, id string) (models.Product, error) {
	all, err := s.stores.Products.Get(ctx)
	if err != nil {
		s.logger.Error("read products", zap.Error(err))
		return models.Product{}, apperr.Storage("Could not read products.", err)
	}
	p, ok := catalog.FindItem(all, category, subcategory, id)
	if !ok {
		return models.Product{}, apperr.NotFound("Product not found")
	}
	return p, nil
}

func (s *Service) FAQs(ctx context.Context) ([]models.FAQ, error) {
	faqs, err := s.stores.FAQs.Get(ctx)
	if err != nil {
		s.logger.Error("read faqs", zap.Error(err))
		return nil, apperr.Storage("Could not read FAQs.", err)
	}
	return faqs, nil
}

// Quote prices a cart held in browser storage.
func (s *Service) Quote(ctx context.Context, refs []models.CartRef) (models.CartQuote, error) {
	all, err := s.stores.Products.Get(ctx)
	if err != nil {
		s.logger.Error("read products", zap.Error(err))
		return models.CartQuote{}, apperr.Storage("Could not read products.", err)
	}
	return catalog.Quote(all, refs), nil
}

// SignUp registers a loyalty member. A known email is rejected and leaves
// the store untouched.
func (s *Service) SignUp(ctx context.Context, req models.SignupRequest) error {
	req.Name, req.Email, req.Phone = trim(req.Name), trim(req.Email), trim(req.Phone)
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return apperr.Validation("All fields required.")
	}

	s.signupMu.Lock()
	defer s.signupMu.Unlock()

	_, exists, err := s.stores.Loyalty.FindByKey(ctx, req.Email)
	if err != nil {
		s.logger.Error("read loyalty", zap.Error(err))
		return apperr.Storage("Could not read loyalty data.", err)
	}
	if exists {
		return apperr.Validation("Email already registered.")
	}

	user := models.LoyaltyUser{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Joined: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.stores.Loyalty.Append(ctx, user); err != nil {
		s.logger.Error("save loyalty user", zap.Error(err))
		return apperr.Storage("Could not save loyalty user.", err)
	}
	s.logger.Info("loyalty signup", zap.String("email", user.Email))
	return nil
}

// Login looks a loyalty member up by email.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (models.LoyaltyUser, error) {
	email := trim(req.Email)
	if email == "" {
		return models.LoyaltyUser{}, apperr.Validation("Email required.")
	}
	user, ok, err := s.stores.Loyalty.FindByKey(ctx, email)
	if err != nil {
		s.logger.Error("read loyalty", zap.Error(err))
		return models.LoyaltyUser{}, apperr.Storage("Could not read loyalty data.", err)
	}
	if !ok {
		return models.LoyaltyUser{}, apperr.NotFound("No account found with that email.")
	}
	return user, nil
}

// SubmitFeedback stores a contact form submission.
func (s *Service) SubmitFeedback(ctx context.Context, req models.FeedbackRequest) error {
	fb := models.Feedback{
		Name:    trim(req.Name),
		Email:   trim(req.Email),
		Subject: trim(req.Subject),
		Message: trim(req.Message),
	}
	if fb.Name == "" || fb.Email == "" || fb.Subject == "" || fb.Message == "" {
		return apperr.Validation("All fields are required.")
	}
	fb.ID = s.newID()
	fb.Timestamp = s.now().UTC().Format(time.RFC3339)

	if err := s.stores.Feedback.Append(ctx, fb); err != nil {
		s.logger.Error("save feedback", zap.Error(err))
		return apperr.Storage("Could not save feedback.", err)
	}
	return nil
}

func trim(s string) string { return strings.TrimSpace(s) }
