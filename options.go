package softge

import "github.com/gogpu/softge/vertex"

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Default: canonical vertex buffers, no lighting
//	pipe := softge.NewPipeline(sink)
//
//	// Emulator wiring: hardware decoder table plus a lighting stage
//	pipe := softge.NewPipeline(sink,
//	    softge.WithDecoderSource(decoders),
//	    softge.WithLighting(lights))
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	lighting        Lighting
	source          vertex.Source
	scratchCapacity int
	cacheCapacity   int
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		source: vertex.CanonicalSource{},
	}
}

// WithLighting attaches a lighting stage, invoked once per vertex after
// the transform chain.
func WithLighting(l Lighting) Option {
	return func(o *pipelineOptions) {
		o.lighting = l
	}
}

// WithDecoderSource plugs in the decoder set that resolves hardware
// vertex-type words. The default source understands canonical buffers
// only (see vertex.CanonicalSource).
func WithDecoderSource(src vertex.Source) Option {
	return func(o *pipelineOptions) {
		if src != nil {
			o.source = src
		}
	}
}

// WithScratchCapacity caps the pipeline's decode arena, in bytes.
// Non-positive values keep vertex.DefaultArenaCapacity.
func WithScratchCapacity(n int) Option {
	return func(o *pipelineOptions) {
		o.scratchCapacity = n
	}
}

// WithDecoderCacheCapacity sets the per-shard capacity of the decoder
// cache. Non-positive values keep cache.DefaultCapacity.
func WithDecoderCacheCapacity(n int) Option {
	return func(o *pipelineOptions) {
		o.cacheCapacity = n
	}
}
