package ffmpeg

// ProgressChannel is the fixed event channel name progress snapshots are
// published under during a download.
const ProgressChannel = "use-ffmpeg://download-progress"

// Progress is a point-in-time snapshot of one download's transfer state.
// Total and Percentage are nil when the server omitted a content length.
type Progress struct {
	Downloaded int64    `json:"downloaded"`
	Total      *int64   `json:"total,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// Emitter receives events published on a named channel. Hosts adapt this to
// whatever event surface they expose; emit failures are ignored.
type Emitter interface {
	Emit(channel string, payload any)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(channel string, payload any)

func (f EmitterFunc) Emit(channel string, payload any) { f(channel, payload) }

type noopEmitter struct{}

func (noopEmitter) Emit(string, any) {}

func newProgress(downloaded, total int64) Progress {
	p := Progress{Downloaded: downloaded}
	if total > 0 {
		t := total
		p.Total = &t
		pct := float64(downloaded) / float64(total) * 100
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		p.Percentage = &pct
	}
	return p
}
