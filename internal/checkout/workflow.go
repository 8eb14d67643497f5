package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/notify"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

type State string

const (
	StateIdle       State = "idle"
	StateEmptyCart  State = "empty_cart"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

const (
	RedirectTo           = "/orders"
	DefaultRedirectDelay = 2 * time.Second
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInProgress   = errors.New("checkout already in progress")
	ErrSubmitFailed = errors.New("order submission failed")
)

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, s order.Submission) (*order.Order, error)
}

type Notifier interface {
	Post(kind notify.Kind, message string) notify.Toast
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, sessionID string, o *order.Order) error
}

// Cart is the read view of a cart plus the one mutation checkout may make.
type Cart interface {
	cart.View
	RemoveSubmitted(lines []cart.Line)
}

type Deps struct {
	Cart          Cart
	Orders        OrderSubmitter
	Notifier      Notifier
	Events        EventPublisher // optional
	Logger        *log.Logger
	SessionID     string
	RedirectDelay time.Duration
}

type Result struct {
	State         State         `json:"state"`
	Order         *order.Order  `json:"order,omitempty"`
	RedirectTo    string        `json:"redirectTo,omitempty"`
	RedirectAfter time.Duration `json:"-"`

	// Done is closed once the success message has been shown long enough
	// to navigate away. Nil unless State is StateSucceeded.
	Done <-chan struct{} `json:"-"`
}

type Workflow struct {
	deps Deps

	mu       sync.Mutex
	state    State
	inFlight bool
}

func NewWorkflow(deps Deps) *Workflow {
	if deps.RedirectDelay <= 0 {
		deps.RedirectDelay = DefaultRedirectDelay
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return &Workflow{deps: deps, state: StateIdle}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Submit runs one checkout attempt. A failed attempt leaves the cart as it
// was and may be retried by calling Submit again.
func (w *Workflow) Submit(ctx context.Context, form Form) (Result, error) {
	if !w.acquire() {
		return Result{State: w.State()}, ErrInProgress
	}
	defer w.release()

	lines := w.deps.Cart.Lines()
	if len(lines) == 0 {
		w.setState(StateEmptyCart)
		return Result{State: StateEmptyCart}, ErrEmptyCart
	}

	w.setState(StateValidating)
	if err := form.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			w.deps.Notifier.Post(notify.KindError, verr.Message)
		}
		w.setState(StateFailed)
		return Result{State: StateFailed}, err
	}

	w.setState(StateSubmitting)
	form = form.normalized()
	sub := order.Submission{
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerAddress: form.CustomerAddress,
		Items:           make([]order.SubmissionItem, 0, len(lines)),
	}
	for _, l := range lines {
		sub.Items = append(sub.Items, order.NewSubmissionItem(l.Product.ID, l.Quantity, l.Product.Price))
	}

	placed, err := w.deps.Orders.SubmitOrder(ctx, sub)
	if err != nil {
		w.deps.Logger.Printf("checkout: submit order session=%s: %v", w.deps.SessionID, err)
		w.deps.Notifier.Post(notify.KindError, MsgSubmitFailed)
		w.setState(StateFailed)
		return Result{State: StateFailed}, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	w.deps.Notifier.Post(notify.KindSuccess, MsgOrderPlaced)
	w.deps.Cart.RemoveSubmitted(lines)
	w.publish(ctx, placed)

	done := make(chan struct{})
	time.AfterFunc(w.deps.RedirectDelay, func() { close(done) })

	w.setState(StateSucceeded)
	return Result{
		State:         StateSucceeded,
		Order:         placed,
		RedirectTo:    RedirectTo,
		RedirectAfter: w.deps.RedirectDelay,
		Done:          done,
	}, nil
}

// publish announces the order. Failures are logged only; the order already
// exists upstream.
func (w *Workflow) publish(ctx context.Context, placed *order.Order) {
	if w.deps.Events == nil {
		return
	}
	if err := w.deps.Events.PublishOrderPlaced(context.WithoutCancel(ctx), w.deps.SessionID, placed); err != nil {
		w.deps.Logger.Printf("checkout: publish order placed order=%d session=%s: %v", placed.ID, w.deps.SessionID, err)
	}
}

func (w *Workflow) acquire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight {
		return false
	}
	w.inFlight = true
	return true
}

func (w *Workflow) release() {
	w.mu.Lock()
	w.inFlight = false
	w.mu.Unlock()
}

func (w *Workflow) setState(s State) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
}
