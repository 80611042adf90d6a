package fcsr

// FPOpKind is the closed tag set calculate_FCSR's external source shares
// with this decoder (spec.md §9's "should model it as a tagged
// enumeration" design note). The names and members are transcribed from
// every calculateFCSR(...) call site in
// VEX/priv/guest_loongarch64_toIR.c, plus the fcmp.* and ftint*/ffint*
// families spec.md §4.4/§4.5 describe but the distillation didn't spell
// out tag-by-tag.
type FPOpKind uint64

const (
	_ FPOpKind = iota

	FADD_S
	FADD_D
	FSUB_S
	FSUB_D
	FMUL_S
	FMUL_D
	FDIV_S
	FDIV_D
	FMADD_S
	FMADD_D
	FMSUB_S
	FMSUB_D
	FNMADD_S
	FNMADD_D
	FNMSUB_S
	FNMSUB_D
	FMAX_S
	FMAX_D
	FMIN_S
	FMIN_D
	FMAXA_S
	FMAXA_D
	FMINA_S
	FMINA_D
	FABS_S
	FABS_D
	FNEG_S
	FNEG_D
	FSQRT_S
	FSQRT_D
	FRECIP_S
	FRECIP_D
	FRSQRT_S
	FRSQRT_D
	FSCALEB_S
	FSCALEB_D
	FLOGB_S
	FLOGB_D
	FCOPYSIGN_S
	FCOPYSIGN_D
	FCLASS_S
	FCLASS_D
	FCVT_S_D
	FCVT_D_S

	FTINTRM_W_S
	FTINTRM_W_D
	FTINTRM_L_S
	FTINTRM_L_D
	FTINTRP_W_S
	FTINTRP_W_D
	FTINTRP_L_S
	FTINTRP_L_D
	FTINTRZ_W_S
	FTINTRZ_W_D
	FTINTRZ_L_S
	FTINTRZ_L_D
	FTINTRNE_W_S
	FTINTRNE_W_D
	FTINTRNE_L_S
	FTINTRNE_L_D
	FTINT_W_S
	FTINT_W_D
	FTINT_L_S
	FTINT_L_D

	FFINT_S_W
	FFINT_S_L
	FFINT_D_W
	FFINT_D_L

	FRINT_S
	FRINT_D

	// FCMP_* covers all 22 predicates for both .s and .d; the helper only
	// needs the tag to decide Invalid-operation signalling, not the
	// predicate logic itself (spec.md §4.4's open question).
	FCMP_CAF_S
	FCMP_CAF_D
	FCMP_SAF_S
	FCMP_SAF_D
	FCMP_CLT_S
	FCMP_CLT_D
	FCMP_SLT_S
	FCMP_SLT_D
	FCMP_CEQ_S
	FCMP_CEQ_D
	FCMP_SEQ_S
	FCMP_SEQ_D
	FCMP_CLE_S
	FCMP_CLE_D
	FCMP_SLE_S
	FCMP_SLE_D
	FCMP_CUN_S
	FCMP_CUN_D
	FCMP_SUN_S
	FCMP_SUN_D
	FCMP_CULT_S
	FCMP_CULT_D
	FCMP_SULT_S
	FCMP_SULT_D
	FCMP_CUEQ_S
	FCMP_CUEQ_D
	FCMP_SUEQ_S
	FCMP_SUEQ_D
	FCMP_CULE_S
	FCMP_CULE_D
	FCMP_SULE_S
	FCMP_SULE_D
	FCMP_CNE_S
	FCMP_CNE_D
	FCMP_SNE_S
	FCMP_SNE_D
	FCMP_COR_S
	FCMP_COR_D
	FCMP_SOR_S
	FCMP_SOR_D
	FCMP_CUNE_S
	FCMP_CUNE_D
	FCMP_SUNE_S
	FCMP_SUNE_D
)
