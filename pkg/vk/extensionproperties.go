// SPDX-License-Identifier: MPL-2.0

package vk

// InstanceExtensionProperties merges the extensions visible in the global
// scope and in zero or more layer scopes into one queryable set. The raw
// per-scope records are kept (an extension offered both globally and by a
// layer appears once per scope), while the derived name index is sorted and
// deduplicated with a "lowest origin index wins" tie-break: accessors that
// resolve a name to a single record return the copy from the earliest scope.
//
// Support checks and revision lookups are O(log n); once an Instance exists,
// prefer its O(1) IsExtensionEnabled.
type InstanceExtensionProperties struct {
	// extensions holds the raw records of all scopes concatenated in scope
	// order: global first, then each layer in request order.
	extensions []ExtensionProperties
	// origins[i] is the scope of extensions[i]: 0 for global, n for the
	// n-th requested layer.
	origins []uint32
	table   stringTable
}

// NewInstanceExtensionProperties queries the driver for the extensions
// visible globally and through each of the given layers, in order. Every
// layer must have been verified via InstanceProperties.IsLayerSupported
// first: passing an unknown layer is a programmer error and panics.
func NewInstanceExtensionProperties(driver Driver, layers ...string) *InstanceExtensionProperties {
	p := &InstanceExtensionProperties{}

	for scope := 0; scope <= len(layers); scope++ {
		layerName := ""
		if scope != 0 {
			layerName = layers[scope-1]
		}

		var count uint32
		assertResult("vkEnumerateInstanceExtensionProperties",
			driver.EnumerateInstanceExtensionProperties(layerName, &count, nil))
		scoped := make([]ExtensionProperties, count)
		if count != 0 {
			assertResult("vkEnumerateInstanceExtensionProperties",
				driver.EnumerateInstanceExtensionProperties(layerName, &count, scoped))
			if int(count) != len(scoped) {
				panic("vk: extension count changed between enumeration calls")
			}
		}

		p.extensions = append(p.extensions, scoped...)
		for range scoped {
			p.origins = append(p.origins, uint32(scope))
		}
	}

	names := make([]string, len(p.extensions))
	for i, extension := range p.extensions {
		names[i] = extension.ExtensionName
	}
	p.table = buildStringTable(names)
	return p
}

// Extensions returns the deduplicated extension names, sorted ascending.
// Unlike the indexed accessors the listing has no stable per-entry origin.
// Callers must not modify the returned slice.
func (p *InstanceExtensionProperties) Extensions() []string {
	return p.table.sorted()
}

// ExtensionCount returns the raw record count over all scopes, duplicates
// included.
func (p *InstanceExtensionProperties) ExtensionCount() uint32 {
	return uint32(len(p.extensions))
}

// IsExtensionSupported reports whether the exact extension name is visible
// in any queried scope. O(log n).
func (p *InstanceExtensionProperties) IsExtensionSupported(extension string) bool {
	return p.table.contains(extension)
}

// ExtensionRevisionFor returns the revision of the named extension, resolved
// to the lowest-origin record when the name is visible in several scopes,
// or 0 when the name is unknown.
func (p *InstanceExtensionProperties) ExtensionRevisionFor(extension string) uint32 {
	record, ok := p.table.find(extension)
	if !ok {
		return 0
	}
	return p.extensions[record].SpecVersion
}

func (p *InstanceExtensionProperties) recordAt(method string, id uint32) (int, error) {
	if id >= uint32(len(p.extensions)) {
		return 0, &IndexOutOfRangeError{
			Component: "InstanceExtensionProperties",
			Method:    method,
			Index:     id,
			Count:     uint32(len(p.extensions)),
		}
	}
	return int(id), nil
}

// Extension returns the name of the raw record at id, in scope-concatenation
// order.
func (p *InstanceExtensionProperties) Extension(id uint32) (string, error) {
	record, err := p.recordAt("extension", id)
	if err != nil {
		return "", err
	}
	return p.extensions[record].ExtensionName, nil
}

// ExtensionRevision returns the revision of the raw record at id.
func (p *InstanceExtensionProperties) ExtensionRevision(id uint32) (uint32, error) {
	record, err := p.recordAt("extensionRevision", id)
	if err != nil {
		return 0, err
	}
	return p.extensions[record].SpecVersion, nil
}

// ExtensionLayer returns the origin scope of the raw record at id: 0 for the
// global scope, n for the n-th layer passed at construction.
func (p *InstanceExtensionProperties) ExtensionLayer(id uint32) (uint32, error) {
	record, err := p.recordAt("extensionLayer", id)
	if err != nil {
		return 0, err
	}
	return p.origins[record], nil
}
