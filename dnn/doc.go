// Package dnn implements the shallow feed-forward latency regressor behind
// the sm×sm / sm×dm decision.
//
// One network maps the seven scaled workload features to a single predicted
// total latency in milliseconds. Two independently trained networks — one
// per execution strategy — are compared at inference time.
//
// The reference architecture is five ReLU hidden layers (1024, 128, 64, 32,
// 16 units) with a linear scalar output, trained with per-parameter Adagrad
// on mean absolute percentage error, a tail validation split and
// patience-based early stopping. All of that is configuration: the package
// treats the model as a black-box predict(features) → latency function and
// makes no accuracy claims.
//
// Weights are persisted as JSON alongside the fitted min-max scaler.
package dnn
