package insight

import "github.com/julianstephens/trackly/internal/models"

// State is the lifecycle of the insight view
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

// Service tracks the insight request lifecycle. A trigger from any state
// restarts at Loading; a result carrying a stale request id is discarded, so
// the last-triggered request always wins even when responses arrive out of
// order. Begin/Resolve are called from the owning goroutine only; the remote
// call itself runs elsewhere and reports back with the id it was given.
type Service struct {
	state  State
	seq    int
	data   *models.InsightData
	errMsg string
}

func NewService() *Service {
	return &Service{state: StateIdle}
}

// State returns the current lifecycle state
func (s *Service) State() State {
	return s.state
}

// Data returns the cached insight, valid only in StateReady
func (s *Service) Data() *models.InsightData {
	return s.data
}

// ErrMessage returns the failure message, valid only in StateFailed
func (s *Service) ErrMessage() string {
	return s.errMsg
}

// Begin moves to Loading and returns the id the eventual result must carry
func (s *Service) Begin() int {
	s.seq++
	s.state = StateLoading
	s.errMsg = ""
	return s.seq
}

// Resolve applies a finished generation. Results for anything but the latest
// request are dropped; nothing is cached on failure.
func (s *Service) Resolve(id int, data *models.InsightData, err error) {
	if id != s.seq {
		return
	}

	if err != nil {
		s.state = StateFailed
		s.errMsg = err.Error()
		return
	}

	s.state = StateReady
	s.data = data
}
