// SPDX-License-Identifier: MPL-2.0

package vk

import "sort"

const (
	// InstanceExtensionCount is the size of the stable ID space for known
	// instance extensions, and thus the width of the per-instance enabled
	// bitset.
	InstanceExtensionCount = 16

	// DeviceExtensionCount is the size of the stable ID space for known
	// device extensions.
	DeviceExtensionCount = 66
)

type (
	// InstanceExtension is run-time information about a known Vulkan
	// instance extension: its name, a dense stable ID used for O(1) bitset
	// indexing, the minimal Vulkan version it requires and the version in
	// which it was promoted to core (VersionNone if never).
	InstanceExtension struct {
		index           int
		requiredVersion Version
		coreVersion     Version
		name            string
	}

	// Extension is run-time information about a known Vulkan device
	// extension, with the same shape as InstanceExtension but a separate ID
	// space.
	Extension struct {
		index           int
		requiredVersion Version
		coreVersion     Version
		name            string
	}
)

// Index returns the stable ID, unique across all instance extension
// partitions.
func (e InstanceExtension) Index() int { return e.index }

// RequiredVersion returns the minimal Vulkan version required by the
// extension.
func (e InstanceExtension) RequiredVersion() Version { return e.requiredVersion }

// CoreVersion returns the Vulkan version in which the extension was promoted
// to core, or VersionNone.
func (e InstanceExtension) CoreVersion() Version { return e.coreVersion }

// Name returns the extension name string.
func (e InstanceExtension) Name() string { return e.name }

// Index returns the stable ID, unique across all device extension
// partitions.
func (e Extension) Index() int { return e.index }

// RequiredVersion returns the minimal Vulkan version required by the
// extension.
func (e Extension) RequiredVersion() Version { return e.requiredVersion }

// CoreVersion returns the Vulkan version in which the extension was promoted
// to core, or VersionNone.
func (e Extension) CoreVersion() Version { return e.coreVersion }

// Name returns the extension name string.
func (e Extension) Name() string { return e.name }

// Known instance extensions.
var (
	ExtDebugReport        = InstanceExtension{0, Vk10, VersionNone, "VK_EXT_debug_report"}
	ExtDebugUtils         = InstanceExtension{1, Vk10, VersionNone, "VK_EXT_debug_utils"}
	ExtValidationFeatures = InstanceExtension{2, Vk10, VersionNone, "VK_EXT_validation_features"}

	KhrDeviceGroupCreation           = InstanceExtension{11, Vk10, Vk11, "VK_KHR_device_group_creation"}
	KhrExternalFenceCapabilities     = InstanceExtension{14, Vk10, Vk11, "VK_KHR_external_fence_capabilities"}
	KhrExternalMemoryCapabilities    = InstanceExtension{12, Vk10, Vk11, "VK_KHR_external_memory_capabilities"}
	KhrExternalSemaphoreCapabilities = InstanceExtension{13, Vk10, Vk11, "VK_KHR_external_semaphore_capabilities"}
	KhrGetPhysicalDeviceProperties2  = InstanceExtension{10, Vk10, Vk11, "VK_KHR_get_physical_device_properties2"}
)

// Each partition must stay strictly sorted by name: known-extension lookups
// binary search the partitions. Instance.initialize needs adapting when a
// new partition is added.
var (
	instanceExtensions = []InstanceExtension{
		ExtDebugReport,
		ExtDebugUtils,
		ExtValidationFeatures,
	}
	instanceExtensions11 = []InstanceExtension{
		KhrDeviceGroupCreation,
		KhrExternalFenceCapabilities,
		KhrExternalMemoryCapabilities,
		KhrExternalSemaphoreCapabilities,
		KhrGetPhysicalDeviceProperties2,
	}
	// No Vulkan 1.2 instance extensions.
)

// instanceExtensionPartitions lists the partitions in the fixed priority
// order used for known-extension lookups.
var instanceExtensionPartitions = [][]InstanceExtension{
	instanceExtensions,
	instanceExtensions11,
}

// InstanceExtensions returns all known instance extensions adopted to core
// in the given version, or the vendor partition for VersionNone. The
// returned slice must not be modified.
func InstanceExtensions(version Version) []InstanceExtension {
	switch version {
	case VersionNone:
		return instanceExtensions
	case Vk10:
		return nil
	case Vk11:
		return instanceExtensions11
	case Vk12:
		return nil
	}
	panic("vk: unknown version partition")
}

// findInstanceExtension binary-searches all partitions for name.
func findInstanceExtension(name string) (InstanceExtension, bool) {
	for _, partition := range instanceExtensionPartitions {
		i := sort.Search(len(partition), func(i int) bool {
			return partition[i].name >= name
		})
		if i < len(partition) && partition[i].name == name {
			return partition[i], true
		}
	}
	return InstanceExtension{}, false
}

// Known device extensions.
var (
	ExtDebugMarker                 = Extension{0, Vk10, VersionNone, "VK_EXT_debug_marker"}
	ExtDescriptorIndexing          = Extension{3, Vk10, Vk12, "VK_EXT_descriptor_indexing"}
	ExtHostQueryReset              = Extension{7, Vk10, Vk12, "VK_EXT_host_query_reset"}
	ExtIndexTypeUint8              = Extension{8, Vk10, VersionNone, "VK_EXT_index_type_uint8"}
	ExtSamplerFilterMinmax         = Extension{2, Vk10, Vk12, "VK_EXT_sampler_filter_minmax"}
	ExtScalarBlockLayout           = Extension{5, Vk10, Vk12, "VK_EXT_scalar_block_layout"}
	ExtSeparateStencilUsage        = Extension{6, Vk10, Vk12, "VK_EXT_separate_stencil_usage"}
	ExtShaderViewportIndexLayer    = Extension{4, Vk10, Vk12, "VK_EXT_shader_viewport_index_layer"}
	ExtTextureCompressionAstcHdr   = Extension{1, Vk10, VersionNone, "VK_EXT_texture_compression_astc_hdr"}
	ImgFormatPvrtc                 = Extension{20, Vk10, VersionNone, "VK_IMG_format_pvrtc"}
	KhrBindMemory2                 = Extension{51, Vk10, Vk11, "VK_KHR_bind_memory2"}
	KhrBufferDeviceAddress         = Extension{65, Vk10, Vk12, "VK_KHR_buffer_device_address"}
	KhrCreateRenderpass2           = Extension{41, Vk10, Vk12, "VK_KHR_create_renderpass2"}
	KhrDedicatedAllocation         = Extension{45, Vk10, Vk11, "VK_KHR_dedicated_allocation"}
	KhrDepthStencilResolve         = Extension{59, Vk10, Vk12, "VK_KHR_depth_stencil_resolve"}
	KhrDescriptorUpdateTemplate    = Extension{38, Vk10, Vk11, "VK_KHR_descriptor_update_template"}
	KhrDeviceGroup                 = Extension{32, Vk10, Vk11, "VK_KHR_device_group"}
	KhrDrawIndirectCount           = Extension{53, Vk10, Vk12, "VK_KHR_draw_indirect_count"}
	KhrDriverProperties            = Extension{57, Vk10, Vk12, "VK_KHR_driver_properties"}
	KhrExternalFence               = Extension{42, Vk10, Vk11, "VK_KHR_external_fence"}
	KhrExternalMemory              = Extension{39, Vk10, Vk11, "VK_KHR_external_memory"}
	KhrExternalSemaphore           = Extension{35, Vk10, Vk11, "VK_KHR_external_semaphore"}
	KhrGetMemoryRequirements2      = Extension{48, Vk10, Vk11, "VK_KHR_get_memory_requirements2"}
	KhrImageFormatList             = Extension{49, Vk10, Vk12, "VK_KHR_image_format_list"}
	KhrImagelessFramebuffer        = Extension{40, Vk10, Vk12, "VK_KHR_imageless_framebuffer"}
	KhrMaintenance1                = Extension{34, Vk10, Vk11, "VK_KHR_maintenance1"}
	KhrMaintenance2                = Extension{43, Vk10, Vk11, "VK_KHR_maintenance2"}
	KhrMaintenance3                = Extension{52, Vk10, Vk11, "VK_KHR_maintenance3"}
	KhrMultiview                   = Extension{31, Vk10, Vk11, "VK_KHR_multiview"}
	KhrRelaxedBlockLayout          = Extension{47, Vk10, Vk11, "VK_KHR_relaxed_block_layout"}
	KhrSamplerMirrorClampToEdge    = Extension{30, Vk10, Vk12, "VK_KHR_sampler_mirror_clamp_to_edge"}
	KhrSamplerYcbcrConversion      = Extension{50, Vk10, Vk11, "VK_KHR_sampler_ycbcr_conversion"}
	KhrSeparateDepthStencilLayouts = Extension{63, Vk10, Vk12, "VK_KHR_separate_depth_stencil_layouts"}
	KhrShaderAtomicInt64           = Extension{56, Vk10, Vk12, "VK_KHR_shader_atomic_int64"}
	KhrShaderDrawParameters        = Extension{33, Vk10, Vk11, "VK_KHR_shader_draw_parameters"}
	KhrShaderFloat16Int8           = Extension{36, Vk10, Vk12, "VK_KHR_shader_float16_int8"}
	KhrShaderFloatControls         = Extension{58, Vk10, Vk12, "VK_KHR_shader_float_controls"}
	KhrShaderSubgroupExtendedTypes = Extension{54, Vk11, Vk12, "VK_KHR_shader_subgroup_extended_types"}
	KhrSpirv14                     = Extension{62, Vk11, Vk12, "VK_KHR_spirv_1_4"}
	KhrStorageBufferStorageClass   = Extension{46, Vk10, Vk11, "VK_KHR_storage_buffer_storage_class"}
	KhrTimelineSemaphore           = Extension{60, Vk10, Vk12, "VK_KHR_timeline_semaphore"}
	KhrUniformBufferStandardLayout = Extension{64, Vk10, Vk12, "VK_KHR_uniform_buffer_standard_layout"}
	KhrVariablePointers            = Extension{44, Vk10, Vk11, "VK_KHR_variable_pointers"}
	KhrVulkanMemoryModel           = Extension{61, Vk10, Vk12, "VK_KHR_vulkan_memory_model"}
)

var (
	extensions = []Extension{
		ExtDebugMarker,
		ExtIndexTypeUint8,
		ExtTextureCompressionAstcHdr,
		ImgFormatPvrtc,
	}
	extensions11 = []Extension{
		KhrBindMemory2,
		KhrDedicatedAllocation,
		KhrDescriptorUpdateTemplate,
		KhrDeviceGroup,
		KhrExternalFence,
		KhrExternalMemory,
		KhrExternalSemaphore,
		KhrGetMemoryRequirements2,
		KhrMaintenance1,
		KhrMaintenance2,
		KhrMaintenance3,
		KhrMultiview,
		KhrRelaxedBlockLayout,
		KhrSamplerYcbcrConversion,
		KhrShaderDrawParameters,
		KhrStorageBufferStorageClass,
		KhrVariablePointers,
	}
	extensions12 = []Extension{
		ExtDescriptorIndexing,
		ExtHostQueryReset,
		ExtSamplerFilterMinmax,
		ExtScalarBlockLayout,
		ExtSeparateStencilUsage,
		ExtShaderViewportIndexLayer,
		KhrBufferDeviceAddress,
		KhrCreateRenderpass2,
		KhrDepthStencilResolve,
		KhrDrawIndirectCount,
		KhrDriverProperties,
		KhrImageFormatList,
		KhrImagelessFramebuffer,
		KhrSamplerMirrorClampToEdge,
		KhrSeparateDepthStencilLayouts,
		KhrShaderAtomicInt64,
		KhrShaderFloat16Int8,
		KhrShaderFloatControls,
		KhrShaderSubgroupExtendedTypes,
		KhrSpirv14,
		KhrTimelineSemaphore,
		KhrUniformBufferStandardLayout,
		KhrVulkanMemoryModel,
	}
)

// DeviceExtensions returns all known device extensions adopted to core in
// the given version, or the vendor partition for VersionNone. The returned
// slice must not be modified.
func DeviceExtensions(version Version) []Extension {
	switch version {
	case VersionNone:
		return extensions
	case Vk10:
		return nil
	case Vk11:
		return extensions11
	case Vk12:
		return extensions12
	}
	panic("vk: unknown version partition")
}
