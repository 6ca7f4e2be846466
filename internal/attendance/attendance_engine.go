package attendance

import (
	"math"
	"net/netip"
	"strings"
	"time"

	"go-hrms/internal/settings"
)

const (
	earthRadiusMeters    = 6371000.0
	defaultStandardHours = 8.0
)

// DistanceMeters is the haversine great-circle distance between two points
// given in decimal degrees.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// IPAllowed matches ip against exact addresses and IPv4 CIDR ranges.
func IPAllowed(ip string, allowed []string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, entry := range allowed {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil || !prefix.Addr().Is4() || !addr.Is4() {
				continue
			}
			if prefix.Masked().Contains(addr) {
				return true
			}
			continue
		}
		if other, err := netip.ParseAddr(entry); err == nil && other.Unmap() == addr {
			return true
		}
	}
	return false
}

// NextPunchType alternates on the last entry; an empty log starts with IN.
func NextPunchType(punches []PunchLog) PunchType {
	if len(punches) > 0 && punches[len(punches)-1].Type == PunchIn {
		return PunchOut
	}
	return PunchIn
}

// WorkingHours walks the whole log and sums every complete IN→OUT pair.
func WorkingHours(punches []PunchLog) float64 {
	var (
		total time.Duration
		open  *time.Time
	)
	for i := range punches {
		p := punches[i]
		switch p.Type {
		case PunchIn:
			if open == nil {
				t := p.Time
				open = &t
			}
		case PunchOut:
			if open != nil {
				if p.Time.After(*open) {
					total += p.Time.Sub(*open)
				}
				open = nil
			}
		}
	}
	return round2(total.Hours())
}

// OvertimeHours is zero unless overtime is enabled. The baseline is the
// configured shift length or a flat eight hours.
func OvertimeHours(worked float64, st settings.AttendanceSettings) float64 {
	if !st.OvertimeEnabled {
		return 0
	}
	baseline := defaultStandardHours
	if st.OvertimeAfterShiftHours {
		if d, err := st.ShiftDuration(); err == nil {
			baseline = d.Hours()
		}
	}
	return round2(math.Max(0, worked-baseline))
}

// LateCutoff is shift start plus the larger of late threshold and grace.
func LateCutoff(day time.Time, st settings.AttendanceSettings) (time.Time, error) {
	start, err := settings.ClockOn(day, st.ShiftStart)
	if err != nil {
		return time.Time{}, err
	}
	allowance := max(st.LateMarkThresholdMinutes, st.GraceTimeMinutes)
	return start.Add(time.Duration(allowance) * time.Minute), nil
}

// ShiftEndOn places shift end on day, rolling into the next day for
// overnight shifts.
func ShiftEndOn(day time.Time, st settings.AttendanceSettings) (time.Time, error) {
	start, err := settings.ClockOn(day, st.ShiftStart)
	if err != nil {
		return time.Time{}, err
	}
	end, err := settings.ClockOn(day, st.ShiftEnd)
	if err != nil {
		return time.Time{}, err
	}
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return end, nil
}

// Evaluate recomputes derived hours and, unless the day carries a sticky
// status, the status itself. final is true after a check-out; low hours
// only become absent then.
func Evaluate(a *Attendance, st settings.AttendanceSettings, final bool) {
	a.WorkingHours = WorkingHours(a.Punches)
	a.OvertimeHours = OvertimeHours(a.WorkingHours, st)
	if a.Status.Sticky() {
		return
	}
	switch {
	case a.WorkingHours >= st.FullDayThresholdHours:
		a.Status = StatusPresent
	case a.WorkingHours >= st.HalfDayThresholdHours:
		a.Status = StatusHalfDay
	case final:
		a.Status = StatusAbsent
	default:
		a.Status = StatusPresent
	}
}

// calendarDay keeps t's wall-clock date as a UTC midnight for date columns.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// localMidnight moves a stored date back into the tenant's zone.
func localMidnight(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
