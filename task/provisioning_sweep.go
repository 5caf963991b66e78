package task

import (
	"net/http"
	"time"

	"bizdesk/model/store"

	log "github.com/sirupsen/logrus"
)

// RunProvisioningSweep re-drives the saga for paid payments whose
// workflow record never reached the commit point, e.g. after a crash
// or a transient storage failure during confirmation. Safe to run on
// a schedule: every step it triggers is insert-or-reuse.
func RunProvisioningSweep(olderThan time.Duration) (completed, failed int) {
	records, errCode := store.GetStore().GetUnprocessedWorkflowRecords(olderThan)
	if errCode != http.StatusFound {
		log.WithField("err_code", errCode).Error("Provisioning sweep failed to list workflow records.")
		return 0, 0
	}

	for _, record := range records {
		logCtx := log.WithFields(log.Fields{
			"payment_id": record.PaymentID,
			"company_id": record.CompanyID,
		})

		if _, errCode := store.GetStore().RunProvisioning(record.PaymentID); errCode != http.StatusOK {
			logCtx.WithField("err_code", errCode).Error("Provisioning sweep run failed.")
			failed++
			continue
		}

		logCtx.Info("Provisioning sweep completed a stalled workflow record.")
		completed++
	}

	if completed > 0 || failed > 0 {
		log.WithFields(log.Fields{"completed": completed, "failed": failed}).
			Info("Provisioning sweep finished.")
	}
	return completed, failed
}
