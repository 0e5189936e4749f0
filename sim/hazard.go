// Package sim: per-net hazard classification over episode traces.
package sim

import (
	"github.com/katalvlaran/gatesim/logic"
	"github.com/katalvlaran/gatesim/netlist"
)

// netHistory condenses one net's transition subsequence: the count, the
// first Old and last New values, and whether any U appeared.
type netHistory struct {
	count       int
	first, last logic.Value
	sawUnknown  bool
}

// Classify analyzes an episode trace and maps every non-primary-input net
// name of nl to its hazard class. Classification is a pure function of
// the trace: calling it twice on the same trace yields identical maps.
//
// Per net, over the subsequence of its transitions in trace order:
//
//   - 0 or 1 transitions                  → HazardNone.
//   - any U in the history                → HazardNone (hazards are
//     Boolean-excursion concepts; unknowns are not excursions).
//   - first == last value, ≥2 transitions → HazardStatic0 / HazardStatic1
//     by the settled value (every transition toggles, so an opposite
//     intermediate value necessarily occurred).
//   - first != last value, ≥3 transitions → HazardDynamic.
//
// The initial-value establishment is not counted: a net's history starts
// at the Old value of its first in-episode transition.
func Classify(nl *netlist.Netlist, trace Trace) map[string]Hazard {
	return classify(nl, trace)
}

// classify is the in-package worker behind Classify.
func classify(nl *netlist.Netlist, trace Trace) map[string]Hazard {
	byNet := make(map[int]*netHistory)
	for _, tr := range trace {
		h := byNet[tr.Net]
		if h == nil {
			h = &netHistory{first: tr.Old}
			byNet[tr.Net] = h
		}
		h.count++
		h.last = tr.New
		if tr.Old == logic.U || tr.New == logic.U {
			h.sawUnknown = true
		}
	}

	report := make(map[string]Hazard)
	for ni := 0; ni < nl.NumNets(); ni++ {
		net := nl.Net(ni)
		if net.IsInput {
			continue
		}
		report[net.Name] = classifyOne(byNet[ni])
	}

	return report
}

// classifyOne reduces one net's condensed history to a hazard class.
func classifyOne(h *netHistory) Hazard {
	if h == nil || h.count <= 1 || h.sawUnknown {
		return HazardNone
	}
	if h.first == h.last {
		if h.first == logic.Zero {
			return HazardStatic0
		}

		return HazardStatic1
	}
	if h.count >= 3 {
		return HazardDynamic
	}

	return HazardNone
}
