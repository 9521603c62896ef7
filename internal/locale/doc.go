// Package locale holds the user-facing text of the calculator.
//
// Every string the session prints lives in a [Catalog]. Russian is the
// default catalog; English mirrors it line for line. [Match] picks a
// catalog from a BCP 47 tag such as "ru", "en-GB" or "ru_RU".
//
// Numbers are printed with [FormatFloat], which reproduces the default
// formatting of a C++ output stream: six significant digits, trailing
// zeros dropped, exponent form for large or tiny magnitudes.
package locale
