// Package referral implements an in-memory directed referral network.
//
// A Network records who referred whom under three structural constraints:
// nobody refers themselves, every candidate is referred at most once, and
// the graph stays acyclic. Together these make the network a forest of
// out-trees, which the analytics in this package rely on.
//
// # Analytics
//
// All read-side operations are pure queries over the current state:
//
//   - [Network.TotalReach] / [Network.ReachSet]: downstream reach via BFS
//   - [Network.TopReferrersByReach]: leaderboard of recorded referrers
//   - [Network.UniqueReachExpansion]: greedy maximum-coverage selection
//   - [Network.FlowCentrality]: betweenness-style broker scoring
//
// # Concurrency
//
// Network is safe for concurrent use: reads may run in parallel, and
// [Network.AddReferral] is serialized against all other operations on the
// same Network.
package referral
