package model

// WizardStage is one step of the gated configuration flow.
type WizardStage string

const (
	StageCake       WizardStage = "cake"
	StageDecoration WizardStage = "decoration"
	StageMessage    WizardStage = "message"
	StageExtras     WizardStage = "extras"
)

// WizardStages lists the stages in completion order.
var WizardStages = []WizardStage{StageCake, StageDecoration, StageMessage, StageExtras}

// WizardProgress tracks which stages are complete. Stages unlock strictly in
// order: decoration needs cake, message needs decoration, extras needs message.
type WizardProgress struct {
	Cake       bool `json:"cake"`
	Decoration bool `json:"decoration"`
	Message    bool `json:"message"`
	Extras     bool `json:"extras"`
}

// Done reports whether a stage is complete.
func (p WizardProgress) Done(stage WizardStage) bool {
	switch stage {
	case StageCake:
		return p.Cake
	case StageDecoration:
		return p.Decoration
	case StageMessage:
		return p.Message
	case StageExtras:
		return p.Extras
	}
	return false
}

// Unlocked reports whether a stage may be completed now, i.e. every earlier
// stage is already done.
func (p WizardProgress) Unlocked(stage WizardStage) bool {
	for _, s := range WizardStages {
		if s == stage {
			return true
		}
		if !p.Done(s) {
			return false
		}
	}
	return false
}

// Active returns the first incomplete stage, or "" when all are done.
func (p WizardProgress) Active() WizardStage {
	for _, s := range WizardStages {
		if !p.Done(s) {
			return s
		}
	}
	return ""
}

// AllDone reports whether every stage is complete.
func (p WizardProgress) AllDone() bool {
	return p.Cake && p.Decoration && p.Message && p.Extras
}

// mark sets a stage complete without gating checks; gating lives in the
// configuration engine.
func (p *WizardProgress) Mark(stage WizardStage) {
	switch stage {
	case StageCake:
		p.Cake = true
	case StageDecoration:
		p.Decoration = true
	case StageMessage:
		p.Message = true
	case StageExtras:
		p.Extras = true
	}
}
