// Package viz renders simulations in the terminal: a braille sub-pixel
// canvas for point clouds, a bubbletea live view with parameter tuning
// and asciigraph charts for stored stat series.
package viz
