package usecase

import "github.com/sugarline/cakeshop/internal/domain/model"

// DisplayMode selects which step sequence an order detail view shows.
type DisplayMode string

const (
	DisplayNormal     DisplayMode = "NORMAL"
	DisplayReportFlow DisplayMode = "REPORT_FLOW"
	DisplayCancelled  DisplayMode = "CANCELLED"
)

// StepID identifies one step of the progress bar. PICKUP is synthetic: it
// never arrives from the platform, it replaces the shipping/ready steps for
// pickup orders.
type StepID string

const (
	StepWaitingConfirm    StepID = "WAITING_CONFIRM"
	StepProcessing        StepID = "PROCESSING"
	StepShipping          StepID = "SHIPPING"
	StepShippingCompleted StepID = "SHIPPING_COMPLETED"
	StepPickup            StepID = "PICKUP"
	StepCompleted         StepID = "COMPLETED"
	StepReportPending     StepID = "REPORT_PENDING"
	StepFaulty            StepID = "FAULTY"
)

// Step is one displayed progress step.
type Step struct {
	ID    StepID `json:"id"`
	Label string `json:"label"`
}

// StatusView is the derived, read-only projection of a raw order status.
// CurrentStep is 1-based; 0 means the raw status is unrecognized and nothing
// is marked active (display degradation, not an error).
type StatusView struct {
	Mode        DisplayMode `json:"mode"`
	Steps       []Step      `json:"steps"`
	CurrentStep int         `json:"current_step"`
	Progress    float64     `json:"progress"`
}

var stepLabels = map[StepID]string{
	StepWaitingConfirm:    "Waiting for confirmation",
	StepProcessing:        "Being prepared",
	StepShipping:          "Out for delivery",
	StepShippingCompleted: "Delivered",
	StepPickup:            "Ready for pickup at store",
	StepCompleted:         "Completed",
	StepReportPending:     "Report under review",
	StepFaulty:            "Marked faulty",
}

// severity ranks the normal-flow steps; pickup shares the shipping rank.
var severity = map[StepID]int{
	StepWaitingConfirm:    1,
	StepProcessing:        2,
	StepShipping:          3,
	StepPickup:            3,
	StepShippingCompleted: 4,
	StepCompleted:         5,
}

var (
	reportFlowSteps = []StepID{
		StepWaitingConfirm, StepProcessing, StepShipping,
		StepShippingCompleted, StepReportPending, StepFaulty,
	}
	deliverySteps = []StepID{
		StepWaitingConfirm, StepProcessing, StepShipping,
		StepShippingCompleted, StepCompleted,
	}
	pickupSteps = []StepID{
		StepWaitingConfirm, StepProcessing, StepPickup, StepCompleted,
	}
)

// ProjectStatus maps a raw platform status plus shipping type onto the
// displayed step sequence. Pure function of its inputs.
func ProjectStatus(rawStatus model.OrderStatus, shippingType model.ShippingType) StatusView {
	if rawStatus == model.OrderStatusCanceled {
		return StatusView{Mode: DisplayCancelled}
	}

	if rawStatus == model.OrderStatusReportPending || rawStatus == model.OrderStatusFaulty {
		view := StatusView{Mode: DisplayReportFlow, Steps: buildSteps(reportFlowSteps)}
		for i, id := range reportFlowSteps {
			if string(id) == string(rawStatus) {
				view.CurrentStep = i + 1
			}
		}
		view.Progress = progressFraction(view.CurrentStep, len(view.Steps))
		return view
	}

	step := remapStatus(rawStatus, shippingType)
	sequence := deliverySteps
	if shippingType == model.ShippingPickup {
		sequence = pickupSteps
	}

	view := StatusView{Mode: DisplayNormal, Steps: buildSteps(sequence)}
	rank, known := severity[step]
	if known {
		for i, id := range sequence {
			if severity[id] <= rank {
				view.CurrentStep = i + 1
			}
		}
	}
	view.Progress = progressFraction(view.CurrentStep, len(view.Steps))
	return view
}

// remapStatus folds platform statuses that have no step of their own into the
// step shown for the given shipping type.
func remapStatus(rawStatus model.OrderStatus, shippingType model.ShippingType) StepID {
	if shippingType == model.ShippingPickup {
		switch rawStatus {
		case model.OrderStatusReadyForPickup, model.OrderStatusShipping:
			return StepPickup
		case model.OrderStatusShippingCompleted:
			return StepCompleted
		}
	} else if rawStatus == model.OrderStatusReadyForPickup {
		return StepProcessing
	}
	return StepID(rawStatus)
}

func buildSteps(ids []StepID) []Step {
	steps := make([]Step, 0, len(ids))
	for _, id := range ids {
		steps = append(steps, Step{ID: id, Label: stepLabels[id]})
	}
	return steps
}

func progressFraction(current, count int) float64 {
	if count < 2 || current < 1 {
		return 0
	}
	f := float64(current-1) / float64(count-1)
	if f > 1 {
		return 1
	}
	return f
}
