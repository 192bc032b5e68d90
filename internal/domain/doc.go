// Package domain turns a partially filled road-traffic accident form into a
// severity risk assessment.
//
// # Feature Records
//
// The pre-trained classifier expects one row with exactly the 32 columns of
// the Addis Ababa road traffic accident dataset it was fitted on, in schema
// order (see [Schema]). Columns fall into three kinds:
//
//	Categorical: strings drawn verbatim from the domain catalog,
//	             e.g. Weather_conditions = "Raining".
//	Numeric:     bounded integers,
//	             Hour_of_Day 0–23, Number_of_vehicles_involved 1–10,
//	             Number_of_casualties 1–10.
//	Sentinel:    Time, always "00:00:00".
//
// Time is a placeholder kept so the row matches the fitted column set. The
// hour the model uses comes from Hour_of_Day. Whether the model's encoder
// gives the constant Time column any weight is unknown, so both are kept.
//
// # Defaults
//
// The form only exposes some fields (see [ExposurePolicy]). Every field the
// user leaves unset takes a static default: the first value listed for it in
// the domain catalog, or the numeric field's form default
// (Hour_of_Day 18, vehicles 2, casualties 1). Defaults are never randomized
// or inferred.
//
// # Risk Tiers
//
// The classifier returns [P(Fatal), P(Serious), P(Slight)] in that fixed
// order. The tier is chosen by an ordered rule, not argmax:
//
//	P(Fatal)   > 0.10  →  Fatal
//	P(Serious) > 0.20  →  Serious
//	otherwise          →  Slight
//
// Both comparisons are strict. Confidence is the largest of the three
// probabilities whichever branch fired, so a scenario with
// [0.15, 0.05, 0.80] is reported as Fatal with 80% confidence.
//
// # Errors
//
//	*InitializationError  artifact missing or unreadable at startup (fatal)
//	*SchemaError          catalog cannot complete a record (integration bug)
//	*ValidationError      user value outside what the form allows
//	*ClassificationError  model invocation failed or returned a bad vector
package domain
