// Package stack turns raw stack-trace text into a short list of parsed frames
// and back.
//
// Parsing is best effort: every line after the header yields exactly one
// Frame, either matched from an "at fn (file:line:col)" or "at file:line:col"
// shape or a sentinel with "<unknown>" fields. At most MaxFrames frames are
// kept so serialized errors stay small.
//
// Callers and FromPkgErrors produce frames from live Go call sites and from
// github.com/pkg/errors stack traces; Format renders frames in the textual
// shape Parse reads.
package stack
