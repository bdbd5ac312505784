// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package machine defines Building and Machine, the physical units placed on
// the factory grid.
//
// A Building has a name, a positive footprint, a description, a placement
// class (on the ground or elevated) and an optional region. A Machine adds a
// cycle time, four slot counts and a power draw:
//
//	m, err := machine.New("Refining Unit", machine.Size{Width: 3, Height: 3},
//	    machine.WithRegion(item.RegionValley),
//	    machine.WithTimeSeconds(2),
//	    machine.WithPhysicalSlots(3, 3),
//	    machine.WithPowerUsage(5),
//	)
//
// # Cycle Time
//
// A cycle time is optional. Logistics such as belts or pylons declare none,
// and recipes hosted on them must state their own time. A declared time of
// zero marks an instantaneous transfer machine; recipes on such machines may
// resolve to a zero cycle time.
//
// # Validation
//
// Constructors return an ErrCodeValidation *errors.StructuredError whose
// context carries "machine" and "field":
//
//	_, err := machine.New("Broken", machine.Size{Width: 0, Height: 1})
//	errors.IsCode(err, errors.ErrCodeValidation) // true
package machine
