// Package config describes axes and demo series declaratively and builds
// them.
//
// A File lists axes and series; it is decoded from YAML (.yaml, .yml) or
// TOML (.toml) by extension:
//
//	axes:
//	  - name: x
//	    kind: date
//	    base_interval: 1 day
//	    skip_empty_periods: 0
//	  - name: y
//	    kind: value
//	    number_style: grouped
//	series:
//	  - name: price
//	    kind: ohlc
//	    n: 60
//	    seed: 7
//
// Build is the tagged-variant factory: it switches on AxisSpec.Kind, builds
// the matching scale strategy and wraps it in an axis. BuildAll builds every
// axis and series of a File and registers every series on every axis; series
// answer only for the axis names they are bound to.
package config
