/*
Copyright 2025 The icu-bed-allocator Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package dataset provides pluggable hospital record sources for the
// allocation service.
//
// A Source supplies per-hospital ICU figures: confirmed ICU patient demand,
// staffed bed capacity, already-allocated beds, and the categorical
// attributes (state, urban status) used for filtering and display. Sources
// sit strictly upstream of the solver; they never influence how an
// allocation is computed.
//
// The CSV source reads the optimized-allocation export produced by the
// planning pipeline. Filters are request-scoped values passed into Records,
// never shared mutable state.
package dataset
