package ocr

import "errors"

// ErrUnparseable is returned when a cell's text cannot be reduced to the
// expected integers. Callers must fail the enclosing team statistic rather
// than substitute zero.
var ErrUnparseable = errors.New("no valid value in recognized text")

// ErrUnavailable means the Tesseract engine cannot be invoked at all.
// This is fatal for a whole batch, not for a single image.
var ErrUnavailable = errors.New("ocr engine unavailable")
