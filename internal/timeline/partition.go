package timeline

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/domain"
)

// ValidatePartition checks that the segments of t are ordered, contiguous
// and cover exactly [DayStart, DayEnd].
func ValidatePartition(t domain.Timeline) error {
	if t.DayStart < 1 || t.DayEnd < t.DayStart {
		return fmt.Errorf("invalid day range %d-%d", t.DayStart, t.DayEnd)
	}
	if len(t.Segments) == 0 {
		return fmt.Errorf("timeline has no segments")
	}
	for i, seg := range t.Segments {
		if seg.DayFrom > seg.DayTo {
			return fmt.Errorf("segment %d: dayFrom %d after dayTo %d", i, seg.DayFrom, seg.DayTo)
		}
		if i == 0 {
			if seg.DayFrom != t.DayStart {
				return fmt.Errorf("segment 0 starts on day %d, want %d", seg.DayFrom, t.DayStart)
			}
			continue
		}
		if prev := t.Segments[i-1]; seg.DayFrom != prev.DayTo+1 {
			return fmt.Errorf("segment %d starts on day %d, want %d", i, seg.DayFrom, prev.DayTo+1)
		}
	}
	if last := t.Segments[len(t.Segments)-1]; last.DayTo != t.DayEnd {
		return fmt.Errorf("last segment ends on day %d, want %d", last.DayTo, t.DayEnd)
	}
	return nil
}
