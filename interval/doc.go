/*Package interval implements half-open [start, end) arithmetic on SNP index
  coordinates, plus interval-union operations in the endpoint-array form used
  throughout this module.
  (Overlapping intervals in a Union are merged, not tracked separately; use
  segment.Set when per-interval annotations matter.)
  It assumes every SNP index fits in a PosType, which is currently int32.
*/
package interval
