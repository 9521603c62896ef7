// Package input reads and validates line-based user input.
//
// Raw text is trimmed of surrounding spaces, then parsed with
// [ParseIntInRange] or [ParseFloatInRange]. Failures are reported as a
// [*ParseError] whose Kind tells the caller what went wrong:
//
//   - [KindNotANumber]: the text is not a numeric literal
//   - [KindOutOfRange]: the literal does not fit the numeric type
//   - [KindBelowMin], [KindAboveMax]: the value violates caller bounds
//
// A [Prompter] repeats a prompt until the input is accepted or the user
// submits an empty line, which cancels the prompt. End of input is treated
// as a cancellation and additionally returned as [ErrInputClosed].
package input
