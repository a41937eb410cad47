/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cache

import "strings"

// Prefix namespaces every key we write so the lexicon can share a redis db.
const Prefix = "portparser"

const separator = ":"

// Key joins parts under Prefix: Key("tags", "casa") is "portparser:tags:casa".
func Key(parts ...string) string {
	return Prefix + separator + strings.Join(parts, separator)
}
