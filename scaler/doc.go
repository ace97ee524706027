// Package scaler provides reversible min-max feature normalization for the
// latency regressors.
//
// Fit learns per-column minima and maxima from a training feature matrix;
// Transform maps features into [0,1] column-wise and Inverse maps them back.
// A fitted scaler round-trips exactly (up to floating-point rounding) and is
// persisted as JSON next to the model weights so training and inference
// always agree on the normalization.
//
// Columns with zero range (constant features) are shifted but not scaled,
// so Transform never divides by zero.
package scaler
