// Package kernels resolves and runs the encoder's two SIMD-dispatched
// numeric kernels:
//
//   - ComputePowerAndStats: |x|^(3/4) pre-scaling of spectral coefficients
//     with the running sum of |x| and the largest power value.
//   - HartleyTransform: the in-place Fast Hartley Transform butterfly pass of
//     the spectral analysis stage.
//
// A Table binds one implementation per kernel, chosen once from a
// cpu.Features value with the fixed precedence
// AVX-512F > AVX2+FMA > AVX > SSE2 > SSE > generic. The scalar generic tier
// is always eligible, so an empty feature set still yields a working table.
//
// Which tiers exist is decided at build time: on amd64 and 386 every x86
// tier is compiled in, while the purego build tag and other architectures
// include only the generic tier. Selection logic is the same in every build.
//
// Lane kernels agree with the scalar xrpow kernel within a relative 1e-5 and
// reproduce the scalar Hartley transform bit for bit.
//
// Most callers use the package-level functions, backed by a Table built once
// from cpu.DetectFeatures(). Tests and tools can build their own Table from
// synthetic features.
package kernels
