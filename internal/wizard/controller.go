package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/intake"
	"github.com/ledgerline/taxintake/internal/logging"
)

// ValidationError reports a rejected step transition. The message is the
// human-readable text shown to the user.
type ValidationError struct {
	Step    Step
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	msgCompleteBeforeContinuing = "Please complete required fields before continuing."
	msgCompleteBeforeSubmitting = "Please complete required fields before submitting."
	msgUploadIDFirst            = "Please upload your Driver's License/ID before continuing."
)

// Controller drives one user's intake wizard session. It owns the in-memory
// record, the current step index, and the autosave schedule; all persistence
// goes through the injected stores.
//
// The lock after submission is cooperative: the controller rejects mutations
// on a submitted draft, but the stores themselves do not re-check status.
type Controller struct {
	drafts  DraftStore
	uploads UploadStore
	log     logging.Logger

	saver       *autosaver
	saveTimeout time.Duration

	mu      sync.Mutex
	draftID string
	status  intake.Status
	rec     intake.Record
	step    Step
	lastErr string
}

// Option configures a Controller.
type Option func(*Controller)

// WithQuietPeriod overrides the autosave debounce window.
func WithQuietPeriod(d time.Duration) Option {
	return func(c *Controller) { c.saver.quiet = d }
}

// WithSaveTimeout overrides the per-persist network timeout used by autosave.
func WithSaveTimeout(d time.Duration) Option {
	return func(c *Controller) { c.saveTimeout = d }
}

// New builds a controller over the given stores. Call Load before anything
// else.
func New(drafts DraftStore, uploads UploadStore, log logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		drafts:      drafts,
		uploads:     uploads,
		log:         log,
		saveTimeout: 10 * time.Second,
		rec:         intake.DefaultRecord(),
		status:      intake.StatusDraft,
	}
	c.saver = newAutosaver(DefaultQuietPeriod, c.autosave)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches the user's current draft, creating one if none exists, and
// resets the wizard to the first step. Step position is never restored from
// the server; only the data payload is persisted.
func (c *Controller) Load(ctx context.Context) error {
	d, err := c.drafts.FindCurrent(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		d, err = c.drafts.Create(ctx)
	}
	if err != nil {
		c.setErr(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draftID = d.ID
	c.status = d.Status
	c.rec = intake.Reconcile(d.Data)
	c.step = StepIdentity
	c.lastErr = ""
	return nil
}

// Step returns the current step index.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Record returns a copy of the current in-memory record.
func (c *Controller) Record() intake.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.Clone()
}

// Status returns the draft's lifecycle status.
func (c *Controller) Status() intake.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// DraftID returns the loaded draft's id, or "" before Load.
func (c *Controller) DraftID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draftID
}

// Locked reports whether the record is read-only (status != Draft).
func (c *Controller) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locked()
}

// Err returns the last user-visible error message, or "" after a successful
// operation.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) locked() bool { return c.status != intake.StatusDraft }

// Update applies the given mutations to a fresh copy of the record and
// schedules an autosave. Rejected with common.ErrLocked once submitted.
// Autosave is suppressed while no draft id exists.
func (c *Controller) Update(muts ...Mutation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.locked() {
		return common.ErrLocked
	}

	next := c.rec.Clone()
	for _, m := range muts {
		m(&next)
	}
	c.rec = next

	if c.draftID != "" {
		c.saver.Schedule(c.draftID, next.Clone())
	}
	return nil
}

// Next advances to the following step if the active step's validation
// predicate passes. The identity step additionally requires at least one
// uploaded file in the "id" category; that check re-queries the upload store
// every time rather than trusting cached panel state.
func (c *Controller) Next(ctx context.Context) error {
	c.mu.Lock()
	if c.locked() {
		c.mu.Unlock()
		return common.ErrLocked
	}
	c.lastErr = ""
	step := c.step
	rec := c.rec.Clone()
	draftID := c.draftID
	c.mu.Unlock()

	switch step {
	case StepIdentity:
		if !rec.IdentityComplete() {
			return c.fail(&ValidationError{Step: step, Message: msgCompleteBeforeContinuing})
		}
		files, err := c.uploads.List(ctx, draftID, CategoryID)
		if err != nil {
			return c.fail(err)
		}
		if len(files) == 0 {
			return c.fail(&ValidationError{Step: step, Message: msgUploadIDFirst})
		}
	case StepConsent:
		if !rec.ConsentComplete() {
			return c.fail(&ValidationError{Step: step, Message: msgCompleteBeforeContinuing})
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if int(c.step) < StepCount-1 {
		c.step++
	}
	return nil
}

// Back moves one step backwards. It never validates and is a no-op at the
// first step.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step > 0 {
		c.step--
	}
}

// JumpTo selects a step directly. Forward validation is intentionally
// bypassed: only Next and Submit are gated, so a user may view a later step
// without satisfying earlier gates.
func (c *Controller) JumpTo(i int) error {
	if i < 0 || i >= StepCount {
		return fmt.Errorf("no such step: %d", i)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = Step(i)
	return nil
}

// Submit finalizes the intake: the consents predicate must pass, the current
// record is persisted, and the draft's status becomes Submitted. Afterwards
// the controller rejects every mutation, upload, and delete.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.locked() {
		c.mu.Unlock()
		return common.ErrLocked
	}
	c.lastErr = ""
	rec := c.rec.Clone()
	draftID := c.draftID
	c.mu.Unlock()

	if draftID == "" {
		return c.fail(errors.New("no draft loaded"))
	}
	if !rec.ConsentComplete() {
		return c.fail(&ValidationError{Step: StepConsent, Message: msgCompleteBeforeSubmitting})
	}

	// Flush the final state synchronously; a queued autosave would only
	// replay the same payload.
	c.saver.Cancel()
	if err := c.drafts.Persist(ctx, draftID, rec); err != nil {
		return c.fail(err)
	}
	if err := c.drafts.Submit(ctx, draftID); err != nil {
		return c.fail(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = intake.StatusSubmitted
	c.saver.Cancel()
	return nil
}

// Upload stores the picked files one by one, in order, stopping at the first
// failure. Files stored before the failure stay stored; nothing is rolled
// back. The returned error names the file that failed.
func (c *Controller) Upload(ctx context.Context, category Category, files []FileInput) ([]StoredFile, error) {
	c.mu.Lock()
	if c.locked() {
		c.mu.Unlock()
		return nil, common.ErrLocked
	}
	c.lastErr = ""
	draftID := c.draftID
	c.mu.Unlock()

	if draftID == "" {
		return nil, c.fail(errors.New("save a draft first to enable uploads"))
	}

	var stored []StoredFile
	for _, f := range files {
		sf, err := c.uploads.Upload(ctx, draftID, category, f)
		if err != nil {
			return stored, c.fail(fmt.Errorf("upload %q: %w", f.Name, err))
		}
		stored = append(stored, *sf)
	}
	return stored, nil
}

// ListFiles returns the draft's files in a category, newest first. Listing
// stays available after submission.
func (c *Controller) ListFiles(ctx context.Context, category Category) ([]StoredFile, error) {
	c.mu.Lock()
	draftID := c.draftID
	c.mu.Unlock()

	if draftID == "" {
		return nil, nil
	}
	files, err := c.uploads.List(ctx, draftID, category)
	if err != nil {
		return nil, c.fail(err)
	}
	return files, nil
}

// DeleteFile removes one uploaded document. Rejected once submitted.
func (c *Controller) DeleteFile(ctx context.Context, f StoredFile) error {
	c.mu.Lock()
	if c.locked() {
		c.mu.Unlock()
		return common.ErrLocked
	}
	c.lastErr = ""
	c.mu.Unlock()

	if err := c.uploads.Delete(ctx, f); err != nil {
		return c.fail(err)
	}
	return nil
}

// autosave is the debounced persist path. Store errors are surfaced as the
// controller's error message, exactly like errors from foreground calls; the
// edit stays local and the next save attempt carries it again.
func (c *Controller) autosave(req saveReq) {
	ctx, cancel := context.WithTimeout(context.Background(), c.saveTimeout)
	defer cancel()

	if err := c.drafts.Persist(ctx, req.draftID, req.rec); err != nil {
		c.setErr(err)
		if c.log != nil {
			c.log.Warn(ctx, "autosave failed", "draft_id", req.draftID, "error", err.Error())
		}
	}
}

func (c *Controller) fail(err error) error {
	c.setErr(err)
	return err
}

func (c *Controller) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err.Error()
}
