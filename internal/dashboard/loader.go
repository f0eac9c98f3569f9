package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chefboard/backend/internal/types"
)

// Section identifies one independently-loaded dashboard section.
type Section string

const (
	SectionProfile Section = "profile"
	SectionStats   Section = "stats"
	SectionRecent  Section = "recent"
	SectionSaved   Section = "saved"
	SectionChefs   Section = "chefs"
	SectionPopular Section = "popular"
)

var allSections = []Section{
	SectionProfile, SectionStats, SectionRecent,
	SectionSaved, SectionChefs, SectionPopular,
}

// SectionState is the loading state of a dashboard section.
type SectionState string

const (
	SectionIdle    SectionState = "idle"
	SectionLoading SectionState = "loading"
	SectionReady   SectionState = "ready"
)

// Loader owns a live dashboard view that is rebuilt whenever the
// viewing user changes. Each SetUser call starts an isolated set of
// section fetches tagged with a generation number; results arriving
// for a superseded generation are discarded, so the view only ever
// reflects the current user (last writer for the current identity
// wins). Sections flip from loading to ready independently.
type Loader struct {
	store Store
	now   func() time.Time

	mu     sync.Mutex
	gen    uint64
	userID uuid.UUID
	view   types.DashboardViewModel
	states map[Section]SectionState
}

// NewLoader creates a new Loader instance
func NewLoader(store Store, now func() time.Time) *Loader {
	if now == nil {
		now = time.Now
	}
	states := make(map[Section]SectionState, len(allSections))
	for _, s := range allSections {
		states[s] = SectionIdle
	}
	return &Loader{
		store:  store,
		now:    now,
		states: states,
	}
}

// SetUser switches the viewing user and re-triggers every section
// fetch. It returns immediately; progress is observable via States
// and View. Calling it again before the previous fetches resolve
// supersedes them.
func (l *Loader) SetUser(ctx context.Context, userID uuid.UUID) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.userID = userID
	l.view = types.DashboardViewModel{
		RecentRecipes:  []types.RecipeViewModel{},
		SavedRecipes:   []types.RecipeViewModel{},
		FeaturedChefs:  []types.ChefSummary{},
		PopularRecipes: []types.RecipeViewModel{},
	}
	for _, s := range allSections {
		l.states[s] = SectionLoading
	}
	l.mu.Unlock()

	now := l.now()

	go l.loadSection(ctx, gen, SectionProfile, func(ctx context.Context) (func(vm *types.DashboardViewModel), error) {
		profile, err := l.store.GetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		return func(vm *types.DashboardViewModel) {
			vm.DisplayName = profile.DisplayName
			vm.IsNewUser = IsNewUser(&profile.RegisteredAt, now)
		}, nil
	})
	go l.loadSection(ctx, gen, SectionStats, func(ctx context.Context) (func(vm *types.DashboardViewModel), error) {
		stats, err := l.store.GetUserStats(ctx, userID)
		if err != nil {
			return nil, err
		}
		return func(vm *types.DashboardViewModel) { vm.Stats = stats }, nil
	})
	go l.loadSection(ctx, gen, SectionRecent, func(ctx context.Context) (func(vm *types.DashboardViewModel), error) {
		raws, err := l.store.GetOwnRecipes(ctx, userID)
		if err != nil {
			return nil, err
		}
		vms := TransformRecipes(raws)
		return func(vm *types.DashboardViewModel) { vm.RecentRecipes = vms }, nil
	})
	go l.loadSection(ctx, gen, SectionSaved, func(ctx context.Context) (func(vm *types.DashboardViewModel), error) {
		raws, err := l.store.GetSavedRecipes(ctx, userID)
		if err != nil {
			return nil, err
		}
		vms := TransformRecipes(raws)
		return func(vm *types.DashboardViewModel) { vm.SavedRecipes = vms }, nil
	})
	go l.loadSection(ctx, gen, SectionChefs, func(ctx context.Context) (func(vm *types.DashboardViewModel), error) {
		candidates, err := l.store.GetChefCandidates(ctx)
		if err != nil {
			return nil, err
		}
		ranked := RankChefs(candidates)
		return func(vm *types.DashboardViewModel) { vm.FeaturedChefs = ranked }, nil
	})
	go l.loadSection(ctx, gen, SectionPopular, func(ctx context.Context) (func(vm *types.DashboardViewModel), error) {
		raws, err := l.store.GetAllRecipes(ctx)
		if err != nil {
			return nil, err
		}
		popular := SelectPopular(TransformRecipes(raws))
		return func(vm *types.DashboardViewModel) { vm.PopularRecipes = popular }, nil
	})
}

// loadSection runs one section fetch and applies its result if the
// loader is still on the same generation. Fetch errors leave the
// section empty but still mark it ready.
func (l *Loader) loadSection(ctx context.Context, gen uint64, section Section, fetch func(ctx context.Context) (func(vm *types.DashboardViewModel), error)) {
	apply, err := fetch(ctx)
	if err != nil {
		log.Printf("[Dashboard] section %s failed: %v", section, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		// A newer SetUser superseded this fetch; drop the result.
		return
	}
	if apply != nil {
		apply(&l.view)
	}
	l.states[section] = SectionReady
}

// View returns a copy of the current view model together with whether
// every section has resolved for the current user.
func (l *Loader) View() (types.DashboardViewModel, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ready := true
	for _, s := range allSections {
		if l.states[s] != SectionReady {
			ready = false
			break
		}
	}
	return l.view, ready
}

// States returns a snapshot of every section's loading state.
func (l *Loader) States() map[Section]SectionState {
	l.mu.Lock()
	defer l.mu.Unlock()
	states := make(map[Section]SectionState, len(l.states))
	for s, st := range l.states {
		states[s] = st
	}
	return states
}

// UserID returns the identity the loader currently serves.
func (l *Loader) UserID() uuid.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.userID
}
