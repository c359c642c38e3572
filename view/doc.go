// SPDX-License-Identifier: MIT

// Package view holds view configurations and the session that numbers them.
//
// A view is one independently cached projection of the Jacobian (Scaling,
// Overview, Count, Average, Symbols, Postopt). Its Config says what to compute;
// the provider package computes it. View ids come from a Session, never from
// global state.
package view
