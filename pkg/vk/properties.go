// SPDX-License-Identifier: MPL-2.0

package vk

// InstanceProperties assembles information about the Vulkan version and the
// available layers, which is known without creating an instance. Both are
// queried lazily on first access and cached for the lifetime of the object;
// the cache is per-object, not process-wide.
//
// Lazy population mutates private state without locking, so a single
// InstanceProperties must not be shared between goroutines.
type InstanceProperties struct {
	driver Driver

	version Version
	// layers is nil until populated. After population it is non-nil even
	// when the driver reports no layers, so the query runs only once.
	layers []LayerProperties
	table  stringTable
}

// NewInstanceProperties returns properties backed by the given driver. No
// query happens until the first accessor call.
func NewInstanceProperties(driver Driver) *InstanceProperties {
	return &InstanceProperties{driver: driver}
}

func (p *InstanceProperties) populateVersion() {
	version, result := p.driver.EnumerateInstanceVersion()
	assertResult("vkEnumerateInstanceVersion", result)
	p.version = version
}

func (p *InstanceProperties) populateLayers() {
	var count uint32
	assertResult("vkEnumerateInstanceLayerProperties",
		p.driver.EnumerateInstanceLayerProperties(&count, nil))

	p.layers = make([]LayerProperties, count)
	if count != 0 {
		assertResult("vkEnumerateInstanceLayerProperties",
			p.driver.EnumerateInstanceLayerProperties(&count, p.layers))
		// The layer count must not change between the two calls.
		if int(count) != len(p.layers) {
			panic("vk: layer count changed between enumeration calls")
		}
	}

	names := make([]string, len(p.layers))
	for i, layer := range p.layers {
		names[i] = layer.LayerName
	}
	p.table = buildStringTable(names)
}

// Version returns the instance-level Vulkan version. It includes patch
// information and thus may not compare equal to the predefined Version
// constants; use IsVersionSupported to check for a particular version.
func (p *InstanceProperties) Version() Version {
	if p.version == 0 {
		p.populateVersion()
	}
	return p.version
}

// IsVersionSupported reports whether the given version is supported.
func (p *InstanceProperties) IsVersionSupported(version Version) bool {
	return version <= p.Version()
}

// Layers returns the names of all layers reported by the driver, sorted
// ascending. The ordering differs from the raw driver order exposed by the
// indexed accessors; callers must not assume the two coincide, and must not
// modify the returned slice.
func (p *InstanceProperties) Layers() []string {
	if p.layers == nil {
		p.populateLayers()
	}
	return p.table.sorted()
}

// IsLayerSupported reports whether the driver knows the exact layer name.
// O(log n) in the layer count.
func (p *InstanceProperties) IsLayerSupported(layer string) bool {
	if p.layers == nil {
		p.populateLayers()
	}
	return p.table.contains(layer)
}

// LayerCount returns the count of layers reported by the driver.
func (p *InstanceProperties) LayerCount() uint32 {
	if p.layers == nil {
		p.populateLayers()
	}
	return uint32(len(p.layers))
}

// layerAt reports an IndexOutOfRangeError for method when id is out of
// range, populating first so the reported count is the real one.
func (p *InstanceProperties) layerAt(method string, id uint32) (*LayerProperties, error) {
	if p.layers == nil {
		p.populateLayers()
	}
	if id >= uint32(len(p.layers)) {
		return nil, &IndexOutOfRangeError{
			Component: "InstanceProperties",
			Method:    method,
			Index:     id,
			Count:     uint32(len(p.layers)),
		}
	}
	return &p.layers[id], nil
}

// Layer returns the name of the layer at id in raw driver-reported order.
func (p *InstanceProperties) Layer(id uint32) (string, error) {
	layer, err := p.layerAt("layer", id)
	if err != nil {
		return "", err
	}
	return layer.LayerName, nil
}

// LayerRevision returns the revision of the layer at id.
func (p *InstanceProperties) LayerRevision(id uint32) (uint32, error) {
	layer, err := p.layerAt("layerRevision", id)
	if err != nil {
		return 0, err
	}
	return layer.ImplementationVersion, nil
}

// LayerVersion returns the Vulkan version the layer at id is implemented
// against.
func (p *InstanceProperties) LayerVersion(id uint32) (Version, error) {
	layer, err := p.layerAt("layerVersion", id)
	if err != nil {
		return 0, err
	}
	return layer.SpecVersion, nil
}

// LayerDescription returns the description of the layer at id.
func (p *InstanceProperties) LayerDescription(id uint32) (string, error) {
	layer, err := p.layerAt("layerDescription", id)
	if err != nil {
		return "", err
	}
	return layer.Description, nil
}
