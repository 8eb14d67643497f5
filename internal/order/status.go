package order

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Label is the display text for s. Values outside the known set keep their
// raw form in JSON but are labelled "Unlabeled".
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unlabeled"
	}
}

type Step struct {
	Title   string `json:"title"`
	Done    bool   `json:"done"`
	Caption string `json:"caption"`
}

// Timeline reports the progress steps shown on the order detail view.
func (o Order) Timeline() []Step {
	processed := o.Status != StatusPending
	shipped := o.Status == StatusShipped || o.Status == StatusCompleted
	delivered := o.Status == StatusCompleted

	placedCaption := ""
	if !o.CreatedAt.IsZero() {
		placedCaption = o.CreatedAt.Format("January 2, 2006 03:04 PM")
	}

	return []Step{
		{Title: "Order Placed", Done: true, Caption: placedCaption},
		{Title: "Processing", Done: processed, Caption: pick(processed, "Your order is being processed", "Waiting for processing")},
		{Title: "Shipped", Done: shipped, Caption: pick(shipped, "Your order has been shipped", "Not yet shipped")},
		{Title: "Delivered", Done: delivered, Caption: pick(delivered, "Your order has been delivered", "Not yet delivered")},
	}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
