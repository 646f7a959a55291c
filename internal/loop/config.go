package loop

// Screen layout, in logical pixels.
// Every label position is centralized here for easy adjustment.

// Status bar
var statusLabelX = [...]float64{5, 200, 450, 650} // Time, Speed, Hits, Lives

const statusLabelY = 5

// End screen
var endLabelY = [...]float64{100, 200, 300, 400} // Time, Speed, Hits, Accuracy
