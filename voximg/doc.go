// Package voximg renders debug visualizations of a voxel.Heightfield to
// PNG, for eyeballing rasterization and filter output during development.
package voximg
