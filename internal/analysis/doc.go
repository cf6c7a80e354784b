// Package analysis inspects computed axial profiles.
//
// The spectral helpers detect the saw-tooth signature an explicit scheme
// leaves behind when the step is too coarse for the local reaction rate.
package analysis
