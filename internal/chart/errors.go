package chart

import "errors"

// ErrNoRecords indicates a renderer was given nothing to plot. The page
// shows an empty-state message instead of an empty chart.
var ErrNoRecords = errors.New("no records to plot")
