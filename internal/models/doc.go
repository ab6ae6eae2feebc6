// Package models defines the core domain records for the order tracker.
//
// # Records
//
//   - Identity / Profile: a login handle and the person behind it (owner or employee)
//   - Company: a client that orders work
//   - Tussle: a work order for a company; the unit revenue and cost are tracked against
//   - Receipt / ExpenseAllocation: proof of a material purchase and the portion of it charged to a tussle
//   - Worker / WorkAssignment: roster entry and a piece of piecework done on a tussle
//   - CalendarEvent: a free-standing date on the calendar
//
// # Conventions
//
//  1. Money is decimal.Decimal so sums are exact. A NULL amount read from the store becomes zero.
//  2. Dates without a time of day (due dates, calendar days) are "YYYY-MM-DD" strings; empty means unset.
//  3. Relationships are ID strings. Related records are embedded only when a query asks for them
//     (for example a Tussle fetched with its Company and cost records).
package models
