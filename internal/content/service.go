// Package content loads pages from the content platform. It owns which
// query feeds which page; the cms package owns how queries are sent.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bilgisen/atlas/internal/cms"
	"github.com/bilgisen/atlas/internal/dispatch"
	"github.com/bilgisen/atlas/internal/logger"
	"github.com/bilgisen/atlas/internal/models"
	"github.com/bilgisen/atlas/internal/queries"
	"github.com/bilgisen/atlas/internal/view"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnknownType is returned for a listing type with no header config.
	ErrUnknownType = errors.New("content: unknown content type")
	// ErrUnknownKind is returned for a detail kind with no single-record template.
	ErrUnknownKind = errors.New("content: no detail template for kind")
	// ErrUnknownCollection is returned for a bad collection name or argument.
	ErrUnknownCollection = errors.New("content: unknown collection")
)

type Service struct {
	atlas    *cms.Client
	accounts *cms.Client
}

// NewService binds the service to the main project and the Customer 360
// project. accounts may be nil, which disables account pages.
func NewService(atlas, accounts *cms.Client) *Service {
	return &Service{atlas: atlas, accounts: accounts}
}

// Home loads the home page feed.
func (s *Service) Home(ctx context.Context) (view.Home, error) {
	start := time.Now()
	feed, err := cms.Fetch[models.Feed](ctx, s.atlas, queries.HomepageFeed, nil)
	if err != nil {
		return view.Home{}, fmt.Errorf("loading home feed: %w", err)
	}
	home := view.HomeFeed(feed)

	log := logger.Get()
	log.Debug().
		Int("featured", len(home.Featured)).
		Int("latest", len(home.Latest)).
		Dur("duration", time.Since(start)).
		Msg("Loaded home feed")
	return home, nil
}

// Listing loads every item of a listing type. Unknown types fail with
// ErrUnknownType before any request is made.
func (s *Service) Listing(ctx context.Context, listingType string) ([]models.Item, error) {
	if _, ok := dispatch.ListingType(listingType); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, listingType)
	}
	query, params := queries.ListingQuery(listingType)
	items, err := cms.Fetch[[]models.Item](ctx, s.atlas, query, params)
	if err != nil {
		return nil, fmt.Errorf("loading %s listing: %w", listingType, err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// Detail loads one record of kind by id. A missing record is cms.ErrNotFound.
func (s *Service) Detail(ctx context.Context, kind, id string) (models.Item, error) {
	query, ok := queries.ByIDQuery(kind)
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	item, err := cms.FetchOne[models.Item](ctx, s.atlas, query, cms.Params{"id": id})
	if err != nil {
		return models.Item{}, fmt.Errorf("loading %s %s: %w", kind, id, err)
	}
	return item, nil
}

// ProductGuide loads one product guide.
func (s *Service) ProductGuide(ctx context.Context, id string) (models.Item, error) {
	return s.Detail(ctx, models.TypeProductGuide, id)
}

// Search runs the global search. A blank term returns no results without
// querying. The buckets come back in one request, so the search succeeds or
// fails as a whole.
func (s *Service) Search(ctx context.Context, term string) (view.SearchResults, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return view.SearchResults{}, nil
	}
	buckets, err := cms.Fetch[models.SearchBuckets](ctx, s.atlas, queries.GlobalSearch, cms.Params{"searchTerm": term})
	if err != nil {
		return view.SearchResults{}, fmt.Errorf("searching %q: %w", term, err)
	}
	return view.NewSearchResults(term, buckets), nil
}

// Recent returns the newest items across the feed types as search results.
func (s *Service) Recent(ctx context.Context) (view.SearchResults, error) {
	home, err := s.Home(ctx)
	if err != nil {
		return view.SearchResults{}, err
	}
	return view.RecentResults(home.Latest), nil
}

// Collection runs a named catalog query and returns its raw result.
func (s *Service) Collection(ctx context.Context, name, arg string) (json.RawMessage, error) {
	query, params, ok := queries.Collection(name, arg)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	raw, err := s.atlas.Query(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("loading collection %s: %w", name, err)
	}
	return raw, nil
}

// Account loads a Customer 360 account: the customer record plus the
// technologies it uses and the content platforms it left, fetched in
// parallel. Any failure fails the whole page.
func (s *Service) Account(ctx context.Context, id string) (models.Account, error) {
	if s.accounts == nil {
		return models.Account{}, fmt.Errorf("loading account %s: %w", id, cms.ErrNotFound)
	}

	var acc models.Account
	params := cms.Params{"id": id, "cmsId": queries.CMSTechnologyID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := cms.FetchOne[models.Customer](gctx, s.accounts, queries.Customer, cms.Params{"id": id})
		acc.Customer = c
		return err
	})
	g.Go(func() error {
		t, err := cms.Fetch[[]models.Technology](gctx, s.accounts, queries.TechnologiesForCustomer, params)
		acc.Technologies = t
		return err
	})
	g.Go(func() error {
		t, err := cms.Fetch[[]models.Technology](gctx, s.accounts, queries.PreviousCMSForCustomer, params)
		acc.PreviousCMS = t
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Account{}, fmt.Errorf("loading account %s: %w", id, err)
	}
	return acc, nil
}
