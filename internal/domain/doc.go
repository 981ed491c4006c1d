// Package domain contains the core model of the thesis framework kit: the
// framework draft, the fixed wizard steps, the wizard state machine and the
// export of a draft into the framework document.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML
// or JSON encodings, net/http, or the filesystem. Infra/adapters map into/from
// these types.
package domain
