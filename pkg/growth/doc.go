// Package growth models cumulative referral growth over time.
//
// The model is a deterministic, continuous approximation: a pool of
// active referrers produces fractional referrals each day, and referrers
// retire as they exhaust a fixed per-referrer capacity. It is independent
// of any concrete referral network; it describes an abstract population.
//
// [Simulate] steps the model day by day. [DaysToTarget] and
// [MinBonusForTarget] invert it by binary search, answering "how long
// until N referrals" and "what is the cheapest incentive that reaches N
// hires in D days".
package growth
