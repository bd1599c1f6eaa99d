package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/biots/config"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkPopulationCrash    BookmarkType = "population_crash"
	BookmarkPopulationBoom     BookmarkType = "population_boom"
	BookmarkCognitionEmergence BookmarkType = "cognition_emergence"
	BookmarkExtinction         BookmarkType = "extinction"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	thresholds config.BookmarksConfig

	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentPeak     int  // peak population since the last crash
	cognitionFired bool // cognition emergence triggers once per run
	extinct        bool
}

// NewBookmarkDetector creates a detector with the given history size and thresholds.
func NewBookmarkDetector(historySize int, thresholds config.BookmarksConfig) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3 // minimum for a meaningful rolling mean
	}
	return &BookmarkDetector{
		thresholds:  thresholds,
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkExtinction(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkCrash(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkBoom(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	if b := bd.checkCognition(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)

	if stats.Population > bd.recentPeak {
		bd.recentPeak = stats.Population
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkCrash(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 {
		return nil
	}

	c := bd.thresholds.Crash
	dropPercent := 1.0 - float64(stats.Population)/float64(bd.recentPeak)
	if dropPercent > c.DropPercent && stats.Population <= bd.recentPeak-c.MinDrop {
		// Reset peak after crash
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.Population

		return &Bookmark{
			Type:        BookmarkPopulationCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Population crashed %.0f%% from peak %d to %d", dropPercent*100, oldPeak, stats.Population),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkBoom(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Population
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	b := bd.thresholds.Boom
	if float64(stats.Population) >= avg*b.Multiplier && stats.Population >= b.MinPopulation {
		return &Bookmark{
			Type:        BookmarkPopulationBoom,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Population %d is %.1fx rolling mean (%.0f)", stats.Population, float64(stats.Population)/avg, avg),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkCognition(stats WindowStats) *Bookmark {
	if bd.cognitionFired || stats.Population == 0 {
		return nil
	}
	if stats.IntelFrac <= bd.thresholds.Cognition.MinFraction {
		return nil
	}

	bd.cognitionFired = true
	return &Bookmark{
		Type:        BookmarkCognitionEmergence,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d of %d biots are intelligent (%.0f%%)", stats.Intelligent, stats.Population, stats.IntelFrac*100),
	}
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	if stats.Population > 0 {
		bd.extinct = false
		return nil
	}
	if bd.extinct {
		return nil
	}

	bd.extinct = true
	return &Bookmark{
		Type:        BookmarkExtinction,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("No biots left after %d deaths in the last window", stats.Deaths),
	}
}
