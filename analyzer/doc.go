// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the subguard static analysis pass.
//
// # Overview
//
// Subguard detects RxJS subscriptions in Angular components, directives, pipes and
// injectable services that are never torn down. A class passes when it declares an
// ngOnDestroy method or pipes at least one of its subscriptions through takeUntil or
// takeUntilDestroyed. Otherwise every subscribe call in the class is reported.
//
// # Example
//
// Reported:
//
//	@Component({ selector: 'app-clock' })
//	export class ClockComponent {
//	  ngOnInit() {
//	    interval(1000).subscribe(tick => this.tick = tick);  // never unsubscribed
//	  }
//	}
//
// Accepted:
//
//	@Component({ selector: 'app-clock' })
//	export class ClockComponent {
//	  ngOnInit() {
//	    interval(1000).pipe(takeUntilDestroyed()).subscribe(tick => this.tick = tick);
//	  }
//	}
//
// # Go Packages
//
// The analyzer checks the TypeScript sources (.ts, .tsx, .mts, .cts) found in the
// directory tree of each Go package, typically an embedded Angular front end.
// Subdirectories holding other Go packages, node_modules and hidden directories are
// not descended into.
//
// # Suppressions
//
// A "// nolint:subguard" comment on the first or last line of a subscribe call suppresses
// its diagnostic, the same comment leading a file skips the file.
package analyzer
