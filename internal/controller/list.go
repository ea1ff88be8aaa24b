package controller

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/magangkita/admin-console-go/internal/api"
)

// DefaultDebounce is how long the search box must stay quiet before the
// pending value is committed.
const DefaultDebounce = 500 * time.Millisecond

// DefaultAutoRefresh is the background poll interval for screens that enable
// auto-refresh.
const DefaultAutoRefresh = 30 * time.Second

// FetchFunc issues the paginated list request for one screen.
type FetchFunc[T any] func(ctx context.Context, params url.Values) (api.Page[T], error)

// PostFilter applies the filter predicates the backend does not support
// natively, over the fetched page only.
type PostFilter[T any] func(filters map[string]string, item T) bool

// Snapshot is a render-ready copy of a list controller's state.
type Snapshot[T any] struct {
	Items      []T
	Meta       *api.PageMeta
	Stats      Stats
	Page       int
	PageSize   int
	Loading    bool
	Refreshing bool
	Window     []int
}

// List owns one screen's filter state, fetched page, and derived stats.
// User-initiated loads clear the list and notify on failure; silent refreshes
// keep the last-good page and stay quiet so background polling never flashes
// an empty screen.
type List[T any] struct {
	fetch     FetchFunc[T]
	notifier  Notifier
	log       *slog.Logger
	failMsg   string
	localKeys []string
	post      PostFilter[T]
	buckets   []Bucket[T]
	debounce  time.Duration
	interval  time.Duration
	onChange  func()

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	filters       *FilterSet
	page          int
	pageSize      int
	items         []T
	meta          *api.PageMeta
	stats         Stats
	loading       bool
	loadingSeq    uint64
	refreshing    bool
	refreshingSeq uint64
	seq           uint64
	pendingSearch string
	searchTimer   *time.Timer
	ticker        *time.Ticker
	tickerStop    chan struct{}
	autoOn        bool
}

type ListOption[T any] func(*List[T])

// WithDefaults sets the mount-time filter defaults.
func WithDefaults[T any](defaults map[string]string) ListOption[T] {
	return func(l *List[T]) { l.filters = NewFilterSet(defaults) }
}

func WithPageSize[T any](n int) ListOption[T] {
	return func(l *List[T]) {
		if n > 0 {
			l.pageSize = n
		}
	}
}

// WithBuckets sets the stat buckets derived from each fetched page.
func WithBuckets[T any](buckets []Bucket[T]) ListOption[T] {
	return func(l *List[T]) { l.buckets = buckets }
}

// WithPostFilter registers client-side-only filter keys and the predicate
// that applies them to the fetched page.
func WithPostFilter[T any](keys []string, match PostFilter[T]) ListOption[T] {
	return func(l *List[T]) {
		l.localKeys = keys
		l.post = match
	}
}

func WithNotifier[T any](n Notifier) ListOption[T] {
	return func(l *List[T]) {
		if n != nil {
			l.notifier = n
		}
	}
}

func WithListLogger[T any](log *slog.Logger) ListOption[T] {
	return func(l *List[T]) {
		if log != nil {
			l.log = log
		}
	}
}

// WithFailureMessage sets the fallback shown when a load fails without a
// backend message.
func WithFailureMessage[T any](msg string) ListOption[T] {
	return func(l *List[T]) { l.failMsg = msg }
}

func WithDebounce[T any](d time.Duration) ListOption[T] {
	return func(l *List[T]) {
		if d > 0 {
			l.debounce = d
		}
	}
}

func WithAutoRefreshInterval[T any](d time.Duration) ListOption[T] {
	return func(l *List[T]) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithOnChange registers a callback fired after every state change, for
// re-rendering.
func WithOnChange[T any](fn func()) ListOption[T] {
	return func(l *List[T]) { l.onChange = fn }
}

func NewList[T any](fetch FetchFunc[T], opts ...ListOption[T]) *List[T] {
	ctx, cancel := context.WithCancel(context.Background())
	l := &List[T]{
		fetch:    fetch,
		notifier: NopNotifier{},
		log:      slog.Default(),
		failMsg:  "Failed to load data",
		debounce: DefaultDebounce,
		interval: DefaultAutoRefresh,
		filters:  NewFilterSet(nil),
		page:     1,
		pageSize: 10,
		items:    []T{},
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetFilter updates one filter. Every key except search resets the page to 1
// synchronously and triggers a reload; search goes through the pending buffer
// and is committed only after the debounce window has been quiet.
func (l *List[T]) SetFilter(key, value string) {
	if key == SearchKey {
		l.setSearch(value)
		return
	}
	l.mu.Lock()
	l.filters.Set(key, value)
	l.page = 1
	l.restartAutoRefreshLocked()
	l.mu.Unlock()
	l.reloadAsync()
}

func (l *List[T]) setSearch(value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pendingSearch = value
	if l.searchTimer != nil {
		l.searchTimer.Stop()
	}
	l.searchTimer = time.AfterFunc(l.debounce, l.commitSearch)
}

// commitSearch applies the pending search if it differs from the committed
// value. Committing the empty string is valid: clearing the box must also
// refetch.
func (l *List[T]) commitSearch() {
	l.mu.Lock()
	if l.pendingSearch == l.filters.Get(SearchKey) {
		l.mu.Unlock()
		return
	}
	l.filters.Set(SearchKey, l.pendingSearch)
	l.page = 1
	l.mu.Unlock()
	l.reloadAsync()
}

// SetFilterQuiet updates a filter without triggering a fetch, for seeding
// state before the initial load. Non-search keys still reset the page.
func (l *List[T]) SetFilterQuiet(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filters.Set(key, value)
	if key == SearchKey {
		l.pendingSearch = value
	} else {
		l.page = 1
	}
}

// SetPageQuiet moves to a page without fetching.
func (l *List[T]) SetPageQuiet(page int) {
	if page < 1 {
		page = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page = page
}

// SetPage moves to another page and reloads.
func (l *List[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	l.mu.Lock()
	l.page = page
	l.mu.Unlock()
	l.reloadAsync()
}

func (l *List[T]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// Filters returns a copy of the committed filter values.
func (l *List[T]) Filters() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filters.Snapshot()
}

// Params returns the query parameters the next fetch would send.
func (l *List[T]) Params() url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()
	return BuildParams(l.filters.Snapshot(), l.page, l.pageSize, l.localKeys...)
}

// ResetFilters restores the defaults and reloads from page 1.
func (l *List[T]) ResetFilters() {
	l.mu.Lock()
	l.filters.Reset()
	l.pendingSearch = l.filters.Get(SearchKey)
	l.page = 1
	l.restartAutoRefreshLocked()
	l.mu.Unlock()
	l.reloadAsync()
}

// Reload is a user-initiated fetch: on failure the list is cleared, stats are
// zeroed, and an error notification is raised.
func (l *List[T]) Reload(ctx context.Context) error {
	return l.load(ctx, false)
}

// Refresh is a silent background fetch: on failure the last-good page stays
// visible and no notification is raised.
func (l *List[T]) Refresh(ctx context.Context) error {
	return l.load(ctx, true)
}

func (l *List[T]) reloadAsync() {
	go func() {
		_ = l.load(l.ctx, false)
	}()
}

func (l *List[T]) load(ctx context.Context, silent bool) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	if silent {
		l.refreshing = true
		l.refreshingSeq = seq
	} else {
		l.loading = true
		l.loadingSeq = seq
	}
	filters := l.filters.Snapshot()
	params := BuildParams(filters, l.page, l.pageSize, l.localKeys...)
	l.mu.Unlock()
	l.emit()

	page, err := l.fetch(ctx, params)

	l.mu.Lock()
	if seq != l.seq {
		// A newer request was issued while this one was in flight; its
		// response owns the screen, so this one is dropped. The in-flight
		// flag this request raised is still its own to clear: the newer
		// request may have been of the other kind, or already settled.
		if silent {
			if l.refreshingSeq == seq {
				l.refreshing = false
			}
		} else if l.loadingSeq == seq {
			l.loading = false
		}
		l.mu.Unlock()
		l.emit()
		l.log.Debug("dropped stale list response", "seq", seq)
		return nil
	}

	if err != nil {
		if silent {
			l.refreshing = false
			l.mu.Unlock()
			l.emit()
			l.log.Warn("background refresh failed", "error", err)
			return err
		}
		l.loading = false
		l.items = []T{}
		l.meta = nil
		l.stats = ComputeStats(l.buckets, nil, -1)
		l.mu.Unlock()
		l.emit()
		l.notifier.Error(api.Message(err, l.failMsg))
		l.log.Error("list load failed", "error", err)
		return err
	}

	items := page.Items
	if l.post != nil {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if l.post(filters, item) {
				kept = append(kept, item)
			}
		}
		items = kept
	}
	serverTotal := -1
	if page.Meta != nil {
		serverTotal = page.Meta.TotalRecords
	}

	l.items = items
	l.meta = page.Meta
	l.stats = ComputeStats(l.buckets, items, serverTotal)
	l.loading = false
	l.refreshing = false
	l.mu.Unlock()
	l.emit()
	return nil
}

// StartAutoRefresh begins background polling at the configured interval.
func (l *List[T]) StartAutoRefresh() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.autoOn {
		return
	}
	l.autoOn = true
	l.startTickerLocked()
}

// StopAutoRefresh cancels background polling.
func (l *List[T]) StopAutoRefresh() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.autoOn = false
	l.stopTickerLocked()
}

// AutoRefreshing reports whether background polling is enabled.
func (l *List[T]) AutoRefreshing() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.autoOn
}

// restartAutoRefreshLocked resets the countdown so the next background poll
// lands a full interval after the filter change, not mid-cycle.
func (l *List[T]) restartAutoRefreshLocked() {
	if l.autoOn {
		l.startTickerLocked()
	}
}

func (l *List[T]) startTickerLocked() {
	l.stopTickerLocked()
	if l.interval <= 0 {
		return
	}
	ticker := time.NewTicker(l.interval)
	stop := make(chan struct{})
	l.ticker = ticker
	l.tickerStop = stop
	go func() {
		for {
			select {
			case <-ticker.C:
				_ = l.load(l.ctx, true)
			case <-stop:
				return
			case <-l.ctx.Done():
				return
			}
		}
	}()
}

func (l *List[T]) stopTickerLocked() {
	if l.ticker != nil {
		l.ticker.Stop()
		close(l.tickerStop)
		l.ticker = nil
		l.tickerStop = nil
	}
}

// Snapshot returns a render-ready copy of the current state.
func (l *List[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]T, len(l.items))
	copy(items, l.items)

	s := Snapshot[T]{
		Items:      items,
		Stats:      l.stats,
		Page:       l.page,
		PageSize:   l.pageSize,
		Loading:    l.loading,
		Refreshing: l.refreshing,
	}
	if l.meta != nil {
		meta := *l.meta
		s.Meta = &meta
		s.Window = WindowPages(meta.CurrentPage, meta.TotalPages)
	}
	return s
}

// Close tears the controller down: the debounce timer and auto-refresh ticker
// stop, and the context used by self-triggered fetches is cancelled so late
// responses cannot land on a closed screen.
func (l *List[T]) Close() {
	l.mu.Lock()
	if l.searchTimer != nil {
		l.searchTimer.Stop()
		l.searchTimer = nil
	}
	l.autoOn = false
	l.stopTickerLocked()
	l.mu.Unlock()
	l.cancel()
}

func (l *List[T]) emit() {
	if l.onChange != nil {
		l.onChange()
	}
}
